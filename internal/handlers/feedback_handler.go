package handlers

import (
	"context"
	"log"
	"net/http"

	"studyquiz-service/internal/auth"
	"studyquiz-service/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	Service *service.FeedbackService
}

func NewFeedbackHandler(s *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{Service: s}
}

func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req struct {
		QuestionID   string `json:"questionId" binding:"required"`
		FeedbackType string `json:"feedbackType" binding:"required"`
		Rating       int    `json:"rating"`
		Comment      string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	feedback, err := h.Service.Submit(context.Background(), auth.UserID(c), req.QuestionID, req.FeedbackType, req.Rating, req.Comment)
	if err != nil {
		log.Printf("submit feedback failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "feedback": feedback})
}

func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	feedback, err := h.Service.ListByOwner(context.Background(), auth.UserID(c), c.Query("questionId"))
	if err != nil {
		log.Printf("list feedback failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": feedback})
}
