package service

import (
	"context"
	"errors"
	"math"
	"time"

	"studyquiz-service/internal/cache"
	"studyquiz-service/internal/models"
	"studyquiz-service/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

const defaultQuestionCount = 10

type SessionService struct {
	Repo         *repository.SessionRepository
	ResponseRepo *repository.ResponseRepository
	QuestionRepo *repository.QuestionRepository
	Cache        *cache.Cache // optional
}

func NewSessionService(
	repo *repository.SessionRepository,
	responseRepo *repository.ResponseRepository,
	questionRepo *repository.QuestionRepository,
	statsCache *cache.Cache,
) *SessionService {
	return &SessionService{
		Repo:         repo,
		ResponseRepo: responseRepo,
		QuestionRepo: questionRepo,
		Cache:        statsCache,
	}
}

// StartOptions selects the question pool for a new session.
type StartOptions struct {
	DocumentID    string
	QuestionCount int
	Difficulty    string
	QuestionTypes []string
	SessionName   string
}

// StartedSession is what the client gets back when a session begins.
// Questions carry no correct answers or explanations.
type StartedSession struct {
	SessionID string                `json:"sessionId"`
	Questions []models.QuizQuestion `json:"questions"`
}

// StartSession selects up to QuestionCount of the owner's questions
// (newest first, no shuffling), then creates the session together with
// one empty response row per selected question.
func (s *SessionService) StartSession(ctx context.Context, userID string, opts StartOptions) (*StartedSession, error) {
	count := opts.QuestionCount
	if count <= 0 {
		count = defaultQuestionCount
	}

	questions, err := s.QuestionRepo.FindByOwner(ctx, userID, repository.QuestionFilter{
		DocumentID: opts.DocumentID,
		Difficulty: opts.Difficulty,
		Types:      opts.QuestionTypes,
		Limit:      int64(count),
	})
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	session := &models.QuizSession{
		ID:             uuid.NewString(),
		UserID:         userID,
		DocumentID:     opts.DocumentID,
		SessionName:    opts.SessionName,
		TotalQuestions: len(questions),
		Status:         models.SessionInProgress,
		StartedAt:      time.Now(),
	}
	if err := s.Repo.Create(ctx, session); err != nil {
		return nil, err
	}

	responses := make([]models.QuizResponse, len(questions))
	for i, q := range questions {
		responses[i] = models.QuizResponse{
			ID:         uuid.NewString(),
			SessionID:  session.ID,
			QuestionID: q.ID,
			UserID:     userID,
		}
	}
	if err := s.ResponseRepo.CreateMany(ctx, responses); err != nil {
		return nil, err
	}

	public := make([]models.QuizQuestion, len(questions))
	for i, q := range questions {
		public[i] = q.Public()
	}
	return &StartedSession{SessionID: session.ID, Questions: public}, nil
}

// ReviewEntry is one line of the completion review, joined against the
// question store at completion time only.
type ReviewEntry struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation"`
	Topic         string `json:"topic"`
	Difficulty    string `json:"difficulty"`
}

type SessionResult struct {
	Score          int           `json:"score"`
	TotalQuestions int           `json:"totalQuestions"`
	CorrectAnswers int           `json:"correctAnswers"`
	Responses      []ReviewEntry `json:"responses"`
}

// CompleteSession scores the session over all its response rows,
// answered or not, and marks it completed. Calling it again recomputes
// from the current response state and overwrites the prior score.
func (s *SessionService) CompleteSession(ctx context.Context, userID, sessionID string) (*SessionResult, error) {
	if _, err := s.Repo.FindByID(ctx, sessionID, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	responses, err := s.ResponseRepo.FindBySession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	questionIDs := make([]string, len(responses))
	for i, r := range responses {
		questionIDs[i] = r.QuestionID
	}
	questions, err := s.QuestionRepo.FindByIDs(ctx, questionIDs)
	if err != nil {
		return nil, err
	}

	total, correct, score := scoreResponses(responses)
	if err := s.Repo.Complete(ctx, sessionID, userID, score, time.Now()); err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.Delete(ctx, cache.DashboardKey(userID))
	}

	return &SessionResult{
		Score:          score,
		TotalQuestions: total,
		CorrectAnswers: correct,
		Responses:      buildReview(responses, questions),
	}, nil
}

// scoreResponses derives the session score: rounded percentage of
// correct rows over all rows, zero when there are no rows at all.
func scoreResponses(responses []models.QuizResponse) (total, correct, score int) {
	total = len(responses)
	for _, r := range responses {
		if r.Correct() {
			correct++
		}
	}
	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}
	return total, correct, score
}

func buildReview(responses []models.QuizResponse, questions map[string]models.Question) []ReviewEntry {
	review := make([]ReviewEntry, 0, len(responses))
	for _, r := range responses {
		q := questions[r.QuestionID]
		review = append(review, ReviewEntry{
			Question:      q.Question,
			UserAnswer:    r.Answer(),
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     r.Correct(),
			Explanation:   q.Explanation,
			Topic:         q.Topic,
			Difficulty:    q.Difficulty,
		})
	}
	return review
}
