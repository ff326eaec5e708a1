package handlers

import (
	"net/http"

	"tripsketch/services"
	"tripsketch/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type pageData struct {
	Destination string
	Days        int
	MinDays     int
	MaxDays     int
	Known       []string
	Submitting  bool
	Plan        *store.Plan
}

func newPageData(sess store.Session) pageData {
	known := services.Destinations()
	names := make([]string, len(known))
	for i, rec := range known {
		names[i] = rec.Name
	}
	return pageData{
		Destination: sess.Destination,
		Days:        sess.Days,
		MinDays:     store.MinDays,
		MaxDays:     store.MaxDays,
		Known:       names,
		Submitting:  sess.State == store.StateSubmitting,
		Plan:        sess.Plan,
	}
}

func (h *Handler) IndexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", newPageData(h.session(c)))
}

// SubmitFormHandler handles the HTML form. Successful submissions redirect
// back to the page so a reload does not resubmit.
func (h *Handler) SubmitFormHandler(c *gin.Context) {
	sess := h.session(c)

	var req PlanRequest
	if err := c.ShouldBind(&req); err != nil {
		data := newPageData(sess)
		data.Destination = c.PostForm("destination")
		c.HTML(http.StatusBadRequest, "index.tmpl", data)
		return
	}

	if _, err := h.submit(c.Request.Context(), sess.ID, req); err != nil {
		status := statusFor(err)
		switch status {
		case http.StatusConflict:
			// already planning; the page shows the busy state
		case http.StatusBadRequest:
			data := newPageData(sess)
			data.Destination = req.Destination
			c.HTML(status, "index.tmpl", data)
			return
		default:
			h.logger.Warn("form submission failed", zap.String("session", sess.ID), zap.Error(err))
			c.HTML(status, "index.tmpl", newPageData(sess))
			return
		}
	}

	c.Redirect(http.StatusSeeOther, "/")
}
