package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"studyquiz-service/internal/auth"
	"studyquiz-service/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Sessions *service.SessionService
	Answers  *service.AnswerService
}

func NewQuizHandler(sessions *service.SessionService, answers *service.AnswerService) *QuizHandler {
	return &QuizHandler{Sessions: sessions, Answers: answers}
}

// StartQuiz creates a session over a filtered slice of the caller's
// question pool. The response deliberately omits correct answers and
// explanations.
func (h *QuizHandler) StartQuiz(c *gin.Context) {
	var req struct {
		DocumentID    string   `json:"documentId"`
		QuestionCount int      `json:"questionCount"`
		Difficulty    string   `json:"difficulty"`
		QuestionTypes []string `json:"questionTypes"`
		SessionName   string   `json:"sessionName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	started, err := h.Sessions.StartSession(context.Background(), auth.UserID(c), service.StartOptions{
		DocumentID:    req.DocumentID,
		QuestionCount: req.QuestionCount,
		Difficulty:    req.Difficulty,
		QuestionTypes: req.QuestionTypes,
		SessionName:   req.SessionName,
	})
	if err != nil {
		if errors.Is(err, service.ErrNoQuestions) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No questions found"})
			return
		}
		log.Printf("start quiz failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start quiz"})
		return
	}

	c.JSON(http.StatusOK, started)
}

// SubmitAnswer grades an answer against its question and records it on
// the session's pre-allocated response row.
func (h *QuizHandler) SubmitAnswer(c *gin.Context) {
	var req struct {
		SessionID  string `json:"sessionId" binding:"required"`
		QuestionID string `json:"questionId" binding:"required"`
		Answer     string `json:"answer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	result, err := h.Answers.SubmitAnswer(context.Background(), auth.UserID(c), req.SessionID, req.QuestionID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		case errors.Is(err, service.ErrResponseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not assigned to this session"})
		default:
			log.Printf("submit answer failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit answer"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"isCorrect":     result.IsCorrect,
		"correctAnswer": result.CorrectAnswer,
	})
}

// CompleteQuiz finalizes the session and returns the full review, with
// explanations and correct answers revealed only now.
func (h *QuizHandler) CompleteQuiz(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	result, err := h.Sessions.CompleteSession(context.Background(), auth.UserID(c), req.SessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		log.Printf("complete quiz failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete quiz"})
		return
	}

	c.JSON(http.StatusOK, result)
}
