package store

import (
	"errors"
	"testing"
	"time"

	"tripsketch/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(name string) services.DestinationRecord {
	return services.Synthesize(name, 2)
}

func TestCreateSession(t *testing.T) {
	s := New(0)
	sess := s.CreateSession()

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, StateIdle, sess.State)
	assert.Equal(t, DefaultDays, sess.Days)
	assert.Nil(t, sess.Plan)

	got, err := s.GetSession(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, 1, s.SessionCount())
}

func TestGetSessionMissing(t *testing.T) {
	_, err := New(0).GetSession("nope")
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestSubmissionCycle(t *testing.T) {
	s := New(0)
	id := s.CreateSession().ID

	sess, err := s.BeginSubmit(id, "Atlantis", 2)
	require.NoError(t, err)
	assert.Equal(t, StateSubmitting, sess.State)
	assert.Equal(t, "Atlantis", sess.Destination)
	assert.Equal(t, 2, sess.Days)

	plan, err := s.Complete(id, record("Atlantis"))
	require.NoError(t, err)
	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, "Atlantis", plan.Destination)
	assert.Equal(t, services.TravelTips, plan.Tips)

	sess, err = s.GetSession(id)
	require.NoError(t, err)
	assert.Equal(t, StateDisplaying, sess.State)
	require.NotNil(t, sess.Plan)
	assert.Equal(t, plan.ID, sess.Plan.ID)

	stored, err := s.GetPlan(plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Atlantis", stored.Record.Name)
}

func TestNewSubmissionReplacesResult(t *testing.T) {
	s := New(0)
	id := s.CreateSession().ID

	_, err := s.BeginSubmit(id, "Atlantis", 2)
	require.NoError(t, err)
	first, err := s.Complete(id, record("Atlantis"))
	require.NoError(t, err)

	sess, err := s.BeginSubmit(id, "Japan", 4)
	require.NoError(t, err)
	assert.Equal(t, StateSubmitting, sess.State)
	assert.Nil(t, sess.Plan)

	second, err := s.Complete(id, record("Japan"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// earlier plans stay downloadable
	_, err = s.GetPlan(first.ID)
	assert.NoError(t, err)
}

func TestBeginSubmitGuards(t *testing.T) {
	s := New(0)
	id := s.CreateSession().ID

	_, err := s.BeginSubmit(id, "   ", 3)
	assert.True(t, errors.Is(err, ErrEmptyDestination))

	_, err = s.BeginSubmit(id, "Japan", 0)
	assert.True(t, errors.Is(err, ErrDaysOutOfRange))

	_, err = s.BeginSubmit(id, "Japan", 15)
	assert.True(t, errors.Is(err, ErrDaysOutOfRange))

	_, err = s.BeginSubmit("missing", "Japan", 3)
	assert.True(t, errors.Is(err, ErrSessionNotFound))

	sess, err := s.GetSession(id)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, sess.State)
}

func TestBeginSubmitWhileSubmitting(t *testing.T) {
	s := New(0)
	id := s.CreateSession().ID

	_, err := s.BeginSubmit(id, "Japan", 3)
	require.NoError(t, err)

	_, err = s.BeginSubmit(id, "Thailand", 3)
	assert.True(t, errors.Is(err, ErrSubmitting))

	sess, _ := s.GetSession(id)
	assert.Equal(t, "Japan", sess.Destination)
}

func TestAbort(t *testing.T) {
	s := New(0)
	id := s.CreateSession().ID

	_, err := s.BeginSubmit(id, "Japan", 3)
	require.NoError(t, err)
	s.Abort(id)

	sess, _ := s.GetSession(id)
	assert.Equal(t, StateIdle, sess.State)

	_, err = s.BeginSubmit(id, "Japan", 3)
	assert.NoError(t, err)
}

func TestAbortLeavesDisplayingAlone(t *testing.T) {
	s := New(0)
	id := s.CreateSession().ID
	_, _ = s.BeginSubmit(id, "Japan", 3)
	_, _ = s.Complete(id, record("Japan"))

	s.Abort(id)
	sess, _ := s.GetSession(id)
	assert.Equal(t, StateDisplaying, sess.State)
}

func TestReturnedValuesAreCopies(t *testing.T) {
	s := New(0)
	id := s.CreateSession().ID
	_, _ = s.BeginSubmit(id, "Atlantis", 2)
	plan, err := s.Complete(id, record("Atlantis"))
	require.NoError(t, err)

	plan.Record.Itinerary[0].Activities[0] = "changed"
	plan.Tips[0] = "changed"

	stored, _ := s.GetPlan(plan.ID)
	assert.Equal(t, "Explore local attractions", stored.Record.Itinerary[0].Activities[0])
	assert.Equal(t, services.TravelTips[0], stored.Tips[0])
}

func TestEvictsOldestSession(t *testing.T) {
	s := New(2)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	first := s.CreateSession().ID
	second := s.CreateSession().ID

	// touching the first session makes the second the oldest
	_, err := s.BeginSubmit(first, "Japan", 3)
	require.NoError(t, err)

	third := s.CreateSession().ID
	assert.Equal(t, 2, s.SessionCount())

	_, err = s.GetSession(second)
	assert.True(t, errors.Is(err, ErrSessionNotFound))
	_, err = s.GetSession(first)
	assert.NoError(t, err)
	_, err = s.GetSession(third)
	assert.NoError(t, err)
}

func TestEvictsOldestPlan(t *testing.T) {
	s := New(1)
	id := s.CreateSession().ID

	_, _ = s.BeginSubmit(id, "Japan", 3)
	first, _ := s.Complete(id, record("Japan"))
	_, _ = s.BeginSubmit(id, "Thailand", 3)
	second, _ := s.Complete(id, record("Thailand"))

	_, err := s.GetPlan(first.ID)
	assert.True(t, errors.Is(err, ErrPlanNotFound))
	_, err = s.GetPlan(second.ID)
	assert.NoError(t, err)
}

func TestValidateDays(t *testing.T) {
	for d := MinDays; d <= MaxDays; d++ {
		assert.NoError(t, ValidateDays(d))
	}
	assert.Error(t, ValidateDays(MinDays-1))
	assert.Error(t, ValidateDays(MaxDays+1))
}

func TestEvictionSkipsSubmittingSessions(t *testing.T) {
	s := New(1)
	a := s.CreateSession().ID
	_, err := s.BeginSubmit(a, "Japan", 3)
	require.NoError(t, err)

	b := s.CreateSession().ID
	assert.Equal(t, 2, s.SessionCount())

	plan, err := s.Complete(a, record("Japan"))
	require.NoError(t, err)
	assert.Equal(t, "Japan", plan.Destination)

	// once a is no longer submitting it is evictable again
	c := s.CreateSession().ID
	_, err = s.GetSession(c)
	assert.NoError(t, err)
	_, errA := s.GetSession(a)
	_, errB := s.GetSession(b)
	assert.True(t, errors.Is(errA, ErrSessionNotFound) || errors.Is(errB, ErrSessionNotFound))
}

func TestCompleteRequiresSubmitting(t *testing.T) {
	s := New(0)
	id := s.CreateSession().ID

	_, err := s.Complete(id, record("Japan"))
	assert.True(t, errors.Is(err, ErrNotSubmitting))

	_, err = s.BeginSubmit(id, "Japan", 3)
	require.NoError(t, err)
	s.Abort(id)

	_, err = s.Complete(id, record("Japan"))
	assert.True(t, errors.Is(err, ErrNotSubmitting))

	sess, _ := s.GetSession(id)
	assert.Equal(t, StateIdle, sess.State)
	assert.Nil(t, sess.Plan)

	_, err = s.Complete("missing", record("Japan"))
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}
