package service

import (
	"context"
	"time"

	"studyquiz-service/internal/models"
	"studyquiz-service/internal/repository"
)

type ExportService struct {
	DocumentRepo *repository.DocumentRepository
	QuestionRepo *repository.QuestionRepository
	SessionRepo  *repository.SessionRepository
	ResponseRepo *repository.ResponseRepository
	FeedbackRepo *repository.FeedbackRepository
}

func NewExportService(
	documentRepo *repository.DocumentRepository,
	questionRepo *repository.QuestionRepository,
	sessionRepo *repository.SessionRepository,
	responseRepo *repository.ResponseRepository,
	feedbackRepo *repository.FeedbackRepository,
) *ExportService {
	return &ExportService{
		DocumentRepo: documentRepo,
		QuestionRepo: questionRepo,
		SessionRepo:  sessionRepo,
		ResponseRepo: responseRepo,
		FeedbackRepo: feedbackRepo,
	}
}

type SessionExport struct {
	models.QuizSession
	Responses []models.QuizResponse `json:"responses"`
}

type ExportData struct {
	UserID       string            `json:"userId"`
	Documents    []models.Document `json:"documents"`
	Questions    []models.Question `json:"questions"`
	QuizSessions []SessionExport   `json:"quizSessions"`
	Feedback     []models.Feedback `json:"feedback"`
	ExportedAt   time.Time         `json:"exportedAt"`
}

// Export gathers everything the service holds for one owner into a
// single downloadable payload.
func (s *ExportService) Export(ctx context.Context, userID string) (*ExportData, error) {
	documents, err := s.DocumentRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	questions, err := s.QuestionRepo.FindByOwner(ctx, userID, repository.QuestionFilter{})
	if err != nil {
		return nil, err
	}
	sessions, err := s.SessionRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	feedback, err := s.FeedbackRepo.FindByOwner(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	sessionIDs := make([]string, len(sessions))
	for i, sess := range sessions {
		sessionIDs[i] = sess.ID
	}
	responses, err := s.ResponseRepo.FindBySessions(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}
	bySession := make(map[string][]models.QuizResponse, len(sessions))
	for _, r := range responses {
		bySession[r.SessionID] = append(bySession[r.SessionID], r)
	}

	exports := make([]SessionExport, len(sessions))
	for i, sess := range sessions {
		exports[i] = SessionExport{QuizSession: sess, Responses: bySession[sess.ID]}
	}

	return &ExportData{
		UserID:       userID,
		Documents:    documents,
		Questions:    questions,
		QuizSessions: exports,
		Feedback:     feedback,
		ExportedAt:   time.Now(),
	}, nil
}
