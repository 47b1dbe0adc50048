package handlers

import (
	"context"
	"log"
	"net/http"

	"studyquiz-service/internal/auth"
	"studyquiz-service/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	Service *service.DashboardService
}

func NewDashboardHandler(s *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.Service.Stats(context.Background(), auth.UserID(c))
	if err != nil {
		log.Printf("dashboard stats failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
