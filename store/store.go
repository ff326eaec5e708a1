package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tripsketch/services"

	"github.com/google/uuid"
)

const (
	MinDays     = 1
	MaxDays     = 14
	DefaultDays = 3

	DefaultMaxSessions = 1000
)

var (
	ErrEmptyDestination = errors.New("destination is required")
	ErrDaysOutOfRange   = fmt.Errorf("days must be between %d and %d", MinDays, MaxDays)
	ErrSubmitting       = errors.New("a submission is already in progress")
	ErrNotSubmitting    = errors.New("no submission in progress")
	ErrSessionNotFound  = errors.New("session not found")
	ErrPlanNotFound     = errors.New("plan not found")
)

// ─── Models ──────────────────────────────────────────────────────────────────

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateDisplaying State = "displaying"
)

type Plan struct {
	ID          string                     `json:"id"`
	Destination string                     `json:"destination"`
	Days        int                        `json:"days"`
	Record      services.DestinationRecord `json:"record"`
	Tips        []string                   `json:"tips"`
	CreatedAt   time.Time                  `json:"created_at"`
}

type Session struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	Days        int       `json:"days"`
	State       State     `json:"state"`
	Plan        *Plan     `json:"plan,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ─── Store ───────────────────────────────────────────────────────────────────

// Store keeps per-session UI state and the plans produced by completed
// submissions. Everything lives in memory for the life of the process.
// Returned values are copies.
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	plans       map[string]*Plan
	maxSessions int
	now         func() time.Time
}

func New(maxSessions int) *Store {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &Store{
		sessions:    make(map[string]*Session),
		plans:       make(map[string]*Plan),
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

// ValidateDays reports whether days is within the range the form allows.
func ValidateDays(days int) error {
	if days < MinDays || days > MaxDays {
		return fmt.Errorf("%w (got %d)", ErrDaysOutOfRange, days)
	}
	return nil
}

// CreateSession starts a new idle session with the default day count.
func (s *Store) CreateSession() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID:        uuid.New().String(),
		Days:      DefaultDays,
		State:     StateIdle,
		UpdatedAt: s.now(),
	}
	s.evictSessionsLocked()
	s.sessions[sess.ID] = sess
	return sess.copy()
}

func (s *Store) GetSession(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return sess.copy(), nil
}

// BeginSubmit moves a session into the submitting state. Any previously
// displayed plan is dropped.
func (s *Store) BeginSubmit(id, destination string, days int) (Session, error) {
	if strings.TrimSpace(destination) == "" {
		return Session{}, ErrEmptyDestination
	}
	if err := ValidateDays(days); err != nil {
		return Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if sess.State == StateSubmitting {
		return Session{}, ErrSubmitting
	}

	sess.Destination = destination
	sess.Days = days
	sess.State = StateSubmitting
	sess.Plan = nil
	sess.UpdatedAt = s.now()
	return sess.copy(), nil
}

// Complete finishes a submission: the record becomes the displayed plan and
// is registered for download. Only a session in StateSubmitting can complete.
func (s *Store) Complete(id string, rec services.DestinationRecord) (Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Plan{}, ErrSessionNotFound
	}
	if sess.State != StateSubmitting {
		return Plan{}, ErrNotSubmitting
	}

	plan := &Plan{
		ID:          uuid.New().String(),
		Destination: sess.Destination,
		Days:        sess.Days,
		Record:      rec.Clone(),
		Tips:        append([]string(nil), services.TravelTips...),
		CreatedAt:   s.now(),
	}
	s.evictPlansLocked()
	s.plans[plan.ID] = plan

	sess.State = StateDisplaying
	sess.Plan = plan
	sess.UpdatedAt = plan.CreatedAt
	return plan.copy(), nil
}

// Abort returns a submitting session to idle.
func (s *Store) Abort(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok && sess.State == StateSubmitting {
		sess.State = StateIdle
		sess.UpdatedAt = s.now()
	}
}

func (s *Store) GetPlan(id string) (Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, ok := s.plans[id]
	if !ok {
		return Plan{}, ErrPlanNotFound
	}
	return plan.copy(), nil
}

func (s *Store) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

// evictSessionsLocked makes room for one more session. Sessions that are
// submitting are never evicted; if every session is submitting the table
// grows past the cap until one of them completes.
func (s *Store) evictSessionsLocked() {
	for len(s.sessions) >= s.maxSessions {
		var oldest *Session
		for _, sess := range s.sessions {
			if sess.State == StateSubmitting {
				continue
			}
			if oldest == nil || sess.UpdatedAt.Before(oldest.UpdatedAt) {
				oldest = sess
			}
		}
		if oldest == nil {
			return
		}
		delete(s.sessions, oldest.ID)
	}
}

func (s *Store) evictPlansLocked() {
	for len(s.plans) >= s.maxSessions {
		var oldest *Plan
		for _, p := range s.plans {
			if oldest == nil || p.CreatedAt.Before(oldest.CreatedAt) {
				oldest = p
			}
		}
		delete(s.plans, oldest.ID)
	}
}

func (sess *Session) copy() Session {
	out := *sess
	if sess.Plan != nil {
		p := sess.Plan.copy()
		out.Plan = &p
	}
	return out
}

func (p *Plan) copy() Plan {
	out := *p
	out.Record = p.Record.Clone()
	out.Tips = append([]string(nil), p.Tips...)
	return out
}
