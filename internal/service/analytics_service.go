package service

import (
	"context"
	"time"

	"studyquiz-service/internal/analytics"
	"studyquiz-service/internal/repository"
)

const defaultWindowDays = 30

type AnalyticsService struct {
	SessionRepo  *repository.SessionRepository
	ResponseRepo *repository.ResponseRepository
	QuestionRepo *repository.QuestionRepository
}

func NewAnalyticsService(
	sessionRepo *repository.SessionRepository,
	responseRepo *repository.ResponseRepository,
	questionRepo *repository.QuestionRepository,
) *AnalyticsService {
	return &AnalyticsService{
		SessionRepo:  sessionRepo,
		ResponseRepo: responseRepo,
		QuestionRepo: questionRepo,
	}
}

// Report aggregates the owner's completed sessions from the last
// windowDays days into time-series, topic and difficulty breakdowns
// plus weak/strong topic insights.
func (s *AnalyticsService) Report(ctx context.Context, userID string, windowDays int) (*analytics.Report, error) {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	since := time.Now().AddDate(0, 0, -windowDays)

	sessions, err := s.SessionRepo.FindCompletedSince(ctx, userID, since)
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

	questionIDs := make([]string, 0, len(responses))
	seen := make(map[string]bool, len(responses))
	for _, r := range responses {
		if !seen[r.QuestionID] {
			seen[r.QuestionID] = true
			questionIDs = append(questionIDs, r.QuestionID)
		}
	}
	questions, err := s.QuestionRepo.FindByIDs(ctx, questionIDs)
	if err != nil {
		return nil, err
	}

	bySession := make(map[string][]analytics.Response, len(sessions))
	for _, r := range responses {
		// A response whose question was since removed from the bank
		// still counts toward its session's accuracy; it just has no
		// topic or difficulty to group under in the breakdowns.
		q := questions[r.QuestionID]
		bySession[r.SessionID] = append(bySession[r.SessionID], analytics.Response{
			Correct:    r.Correct(),
			Topic:      q.Topic,
			Difficulty: q.Difficulty,
		})
	}

	input := make([]analytics.Session, len(sessions))
	for i, sess := range sessions {
		input[i] = analytics.Session{
			StartedAt: sess.StartedAt,
			Responses: bySession[sess.ID],
		}
	}

	report := analytics.Aggregate(input)
	return &report, nil
}
