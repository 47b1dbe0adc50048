package service

import (
	"context"

	"studyquiz-service/internal/models"
	"studyquiz-service/internal/repository"
)

type DocumentService struct {
	Repo *repository.DocumentRepository
}

func NewDocumentService(repo *repository.DocumentRepository) *DocumentService {
	return &DocumentService{Repo: repo}
}

func (s *DocumentService) ListDocuments(ctx context.Context, userID string) ([]models.Document, error) {
	return s.Repo.FindByOwner(ctx, userID)
}
