package handlers

import (
	"context"
	"log"
	"net/http"

	"studyquiz-service/internal/auth"
	"studyquiz-service/internal/repository"
	"studyquiz-service/internal/service"

	"github.com/gin-gonic/gin"
)

// LibraryHandler serves the owner's study material: uploaded document
// metadata and the generated question bank.
type LibraryHandler struct {
	Documents *service.DocumentService
	Questions *service.QuestionService
}

func NewLibraryHandler(documents *service.DocumentService, questions *service.QuestionService) *LibraryHandler {
	return &LibraryHandler{Documents: documents, Questions: questions}
}

func (h *LibraryHandler) ListDocuments(c *gin.Context) {
	documents, err := h.Documents.ListDocuments(context.Background(), auth.UserID(c))
	if err != nil {
		log.Printf("list documents failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": documents})
}

func (h *LibraryHandler) ListQuestions(c *gin.Context) {
	filter := repository.QuestionFilter{
		DocumentID: c.Query("documentId"),
		Difficulty: c.Query("difficulty"),
	}
	if qType := c.Query("type"); qType != "" {
		filter.Types = []string{qType}
	}

	questions, err := h.Questions.ListQuestions(context.Background(), auth.UserID(c), filter)
	if err != nil {
		log.Printf("list questions failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}
