package service

import (
	"context"

	"studyquiz-service/internal/models"
	"studyquiz-service/internal/repository"
)

type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

// ListQuestions returns the owner's question bank, newest first. This
// is the owner browsing their own bank, so answers and explanations
// are included; the no-leak rule applies to quiz start only.
func (s *QuestionService) ListQuestions(ctx context.Context, userID string, filter repository.QuestionFilter) ([]models.Question, error) {
	filter.Limit = 0
	return s.Repo.FindByOwner(ctx, userID, filter)
}
