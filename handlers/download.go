package handlers

import (
	"net/http"

	"tripsketch/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) DownloadHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing plan ID"})
		return
	}

	plan, err := h.store.GetPlan(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	pdfBytes, err := services.GeneratePDFBytes(services.PDFData{
		Record:      plan.Record,
		Days:        plan.Days,
		Tips:        plan.Tips,
		GeneratedAt: plan.CreatedAt,
	})
	if err != nil {
		h.logger.Error("PDF generation failed", zap.String("plan", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=tripsketch-itinerary.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *Handler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "tripsketch API",
		"sessions": h.store.SessionCount(),
	})
}
