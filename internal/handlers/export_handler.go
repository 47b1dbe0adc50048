package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"studyquiz-service/internal/auth"
	"studyquiz-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	Service *service.ExportService
}

func NewExportHandler(s *service.ExportService) *ExportHandler {
	return &ExportHandler{Service: s}
}

// ExportAll streams a JSON download of everything stored for the
// caller.
func (h *ExportHandler) ExportAll(c *gin.Context) {
	data, err := h.Service.Export(context.Background(), auth.UserID(c))
	if err != nil {
		log.Printf("export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}

	filename := fmt.Sprintf("studyquiz_data_%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.IndentedJSON(http.StatusOK, data)
}
