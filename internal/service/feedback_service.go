package service

import (
	"context"
	"time"

	"studyquiz-service/internal/models"
	"studyquiz-service/internal/repository"

	"github.com/google/uuid"
)

type FeedbackService struct {
	Repo *repository.FeedbackRepository
}

func NewFeedbackService(repo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{Repo: repo}
}

func (s *FeedbackService) Submit(ctx context.Context, userID, questionID, feedbackType string, rating int, comment string) (*models.Feedback, error) {
	feedback := &models.Feedback{
		ID:           uuid.NewString(),
		UserID:       userID,
		QuestionID:   questionID,
		FeedbackType: feedbackType,
		Rating:       rating,
		Comment:      comment,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *FeedbackService) ListByOwner(ctx context.Context, userID, questionID string) ([]models.Feedback, error) {
	return s.Repo.FindByOwner(ctx, userID, questionID)
}
