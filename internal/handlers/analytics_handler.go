package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"studyquiz-service/internal/auth"
	"studyquiz-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	Service *service.AnalyticsService
}

func NewAnalyticsHandler(s *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: s}
}

// GetAnalytics returns the performance report over the requested
// timeframe in days (default 30).
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	timeframe := c.DefaultQuery("timeframe", "30")
	days, err := strconv.Atoi(timeframe)
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "timeframe must be a positive number of days"})
		return
	}

	report, err := h.Service.Report(context.Background(), auth.UserID(c), days)
	if err != nil {
		log.Printf("analytics failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}

	c.JSON(http.StatusOK, report)
}
