package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"tripsketch/services"
	"tripsketch/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionCookie carries the caller's session id.
const SessionCookie = "tripsketch_session"

type Handler struct {
	store        *store.Store
	planner      *services.Planner
	logger       *zap.Logger
	cookieSecure bool
}

func New(st *store.Store, planner *services.Planner, logger *zap.Logger, cookieSecure bool) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:        st,
		planner:      planner,
		logger:       logger,
		cookieSecure: cookieSecure,
	}
}

// Routes registers the page and the API on r.
func (h *Handler) Routes(r *gin.Engine) {
	r.GET("/", h.IndexHandler)
	r.POST("/", h.SubmitFormHandler)

	api := r.Group("/api")
	{
		api.GET("/health", h.HealthHandler)
		api.GET("/destinations", DestinationsHandler)
		api.GET("/session", h.SessionHandler)
		api.POST("/plan", h.PlanHandler)
		api.GET("/download/:id", h.DownloadHandler)
	}
}

// PlanRequest is accepted both as JSON and as a form post. A zero Days means
// the default trip length.
type PlanRequest struct {
	Destination string `json:"destination" form:"destination" binding:"required"`
	Days        int    `json:"days" form:"days" binding:"omitempty,min=1,max=14"`
}

func (r PlanRequest) days() int {
	if r.Days == 0 {
		return store.DefaultDays
	}
	return r.Days
}

// session returns the caller's session, starting a new one when the cookie
// is missing or refers to a session that no longer exists.
func (h *Handler) session(c *gin.Context) store.Session {
	if id, err := c.Cookie(SessionCookie); err == nil && id != "" {
		if sess, err := h.store.GetSession(id); err == nil {
			return sess
		}
	}

	sess := h.store.CreateSession()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, sess.ID, 0, "/", "", h.cookieSecure, true)
	return sess
}

// submit runs one idle → submitting → displaying cycle for the session.
func (h *Handler) submit(ctx context.Context, sessionID string, req PlanRequest) (store.Plan, error) {
	sess, err := h.store.BeginSubmit(sessionID, req.Destination, req.days())
	if err != nil {
		return store.Plan{}, err
	}

	rec, err := h.planner.Plan(ctx, sess.Destination, sess.Days)
	if err != nil {
		h.store.Abort(sessionID)
		return store.Plan{}, fmt.Errorf("plan %q: %w", sess.Destination, err)
	}

	plan, err := h.store.Complete(sessionID, rec)
	if err != nil {
		return store.Plan{}, fmt.Errorf("complete session %s: %w", sessionID, err)
	}
	return plan, nil
}

// statusFor maps submission errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrEmptyDestination), errors.Is(err, store.ErrDaysOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrSubmitting), errors.Is(err, store.ErrNotSubmitting):
		return http.StatusConflict
	case errors.Is(err, store.ErrSessionNotFound), errors.Is(err, store.ErrPlanNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
