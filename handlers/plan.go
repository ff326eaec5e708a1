package handlers

import (
	"net/http"

	"tripsketch/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PlanResponse struct {
	PlanID      string                     `json:"plan_id"`
	PDFURL      string                     `json:"pdf_url"`
	Days        int                        `json:"days"`
	Destination services.DestinationRecord `json:"destination"`
	Tips        []string                   `json:"tips"`
}

func (h *Handler) PlanHandler(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sess := h.session(c)
	plan, err := h.submit(c.Request.Context(), sess.ID, req)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Warn("plan failed", zap.String("session", sess.ID), zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, PlanResponse{
		PlanID:      plan.ID,
		PDFURL:      "/api/download/" + plan.ID,
		Days:        plan.Days,
		Destination: plan.Record,
		Tips:        plan.Tips,
	})
}

func (h *Handler) SessionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.session(c))
}

func DestinationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"destinations": services.Destinations()})
}
