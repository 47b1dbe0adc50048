package service

import (
	"context"
	"errors"
	"time"

	"studyquiz-service/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

type AnswerService struct {
	ResponseRepo *repository.ResponseRepository
	QuestionRepo *repository.QuestionRepository
}

func NewAnswerService(responseRepo *repository.ResponseRepository, questionRepo *repository.QuestionRepository) *AnswerService {
	return &AnswerService{ResponseRepo: responseRepo, QuestionRepo: questionRepo}
}

// SubmissionResult reveals the verdict and the correct answer, which is
// only ever disclosed after an attempt has been made.
type SubmissionResult struct {
	IsCorrect     bool   `json:"isCorrect"`
	CorrectAnswer string `json:"correctAnswer"`
}

// SubmitAnswer grades the answer against the question and fills the
// pre-allocated response row. Resubmitting overwrites the earlier
// attempt; the row count never changes.
func (s *AnswerService) SubmitAnswer(ctx context.Context, userID, sessionID, questionID, answer string) (*SubmissionResult, error) {
	question, err := s.QuestionRepo.FindByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	isCorrect := question.Grade(answer)

	matched, err := s.ResponseRepo.Fill(ctx, sessionID, questionID, userID, answer, isCorrect, time.Now())
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrResponseNotFound
	}

	return &SubmissionResult{IsCorrect: isCorrect, CorrectAnswer: question.CorrectAnswer}, nil
}
