package service

import (
	"context"
	"log"
	"sort"
	"time"

	"studyquiz-service/internal/analytics"
	"studyquiz-service/internal/cache"
	"studyquiz-service/internal/models"
	"studyquiz-service/internal/repository"
)

type DashboardService struct {
	DocumentRepo *repository.DocumentRepository
	QuestionRepo *repository.QuestionRepository
	SessionRepo  *repository.SessionRepository
	ResponseRepo *repository.ResponseRepository
	Cache        *cache.Cache // optional
}

func NewDashboardService(
	documentRepo *repository.DocumentRepository,
	questionRepo *repository.QuestionRepository,
	sessionRepo *repository.SessionRepository,
	responseRepo *repository.ResponseRepository,
	statsCache *cache.Cache,
) *DashboardService {
	return &DashboardService{
		DocumentRepo: documentRepo,
		QuestionRepo: questionRepo,
		SessionRepo:  sessionRepo,
		ResponseRepo: responseRepo,
		Cache:        statsCache,
	}
}

type DocumentStats struct {
	Total     int `json:"total"`
	Processed int `json:"processed"`
	ThisWeek  int `json:"thisWeek"`
}

type DifficultyCounts struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

type QuestionStats struct {
	Total        int              `json:"total"`
	ByDifficulty DifficultyCounts `json:"byDifficulty"`
	ByType       map[string]int   `json:"byType"`
}

type QuizStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	AverageScore   float64 `json:"averageScore"`
	TotalQuestions int     `json:"totalQuestions"`
	CorrectAnswers int     `json:"correctAnswers"`
	Streak         int     `json:"streak"`
}

// Activity is one entry of the merged recent-activity feed.
type Activity struct {
	Type  string    `json:"type"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Score *int      `json:"score,omitempty"`
}

type DashboardStats struct {
	Documents      DocumentStats `json:"documents"`
	Questions      QuestionStats `json:"questions"`
	Quizzes        QuizStats     `json:"quizzes"`
	RecentActivity []Activity    `json:"recentActivity"`
}

// Stats composes the per-owner dashboard: entity counts, aggregate quiz
// performance, the engagement streak and a merged recent-activity feed.
// Served from the cache when one is configured.
func (s *DashboardService) Stats(ctx context.Context, userID string) (*DashboardStats, error) {
	key := cache.DashboardKey(userID)
	if s.Cache != nil {
		var cached DashboardStats
		hit, err := s.Cache.GetJSON(ctx, key, &cached)
		if err != nil {
			log.Printf("dashboard cache read failed: %v", err)
		} else if hit {
			return &cached, nil
		}
	}

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

	var completed []models.QuizSession
	for _, sess := range sessions {
		if sess.Completed() {
			completed = append(completed, sess)
		}
	}

	correctAnswers, err := s.countCorrectAnswers(ctx, completed)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		Documents:      documentStats(documents),
		Questions:      questionStats(questions),
		Quizzes:        quizStats(sessions, completed, correctAnswers),
		RecentActivity: recentActivity(documents, completed, questions),
	}

	if s.Cache != nil {
		if err := s.Cache.SetJSON(ctx, key, stats); err != nil {
			log.Printf("dashboard cache write failed: %v", err)
		}
	}
	return stats, nil
}

// countCorrectAnswers derives the aggregate correct count from the
// response rows; it is never stored on the session.
func (s *DashboardService) countCorrectAnswers(ctx context.Context, completed []models.QuizSession) (int, error) {
	ids := make([]string, len(completed))
	for i, sess := range completed {
		ids[i] = sess.ID
	}
	responses, err := s.ResponseRepo.FindBySessions(ctx, ids)
	if err != nil {
		return 0, err
	}
	correct := 0
	for _, r := range responses {
		if r.Correct() {
			correct++
		}
	}
	return correct, nil
}

func documentStats(documents []models.Document) DocumentStats {
	oneWeekAgo := time.Now().AddDate(0, 0, -7)
	stats := DocumentStats{Total: len(documents)}
	for _, d := range documents {
		if d.Processed {
			stats.Processed++
		}
		if !d.UploadDate.Before(oneWeekAgo) {
			stats.ThisWeek++
		}
	}
	return stats
}

func questionStats(questions []models.Question) QuestionStats {
	stats := QuestionStats{
		Total:  len(questions),
		ByType: map[string]int{},
	}
	for _, q := range questions {
		switch q.Difficulty {
		case models.DifficultyEasy:
			stats.ByDifficulty.Easy++
		case models.DifficultyMedium:
			stats.ByDifficulty.Medium++
		case models.DifficultyHard:
			stats.ByDifficulty.Hard++
		}
		stats.ByType[q.Type]++
	}
	return stats
}

func quizStats(sessions, completed []models.QuizSession, correctAnswers int) QuizStats {
	stats := QuizStats{
		Total:          len(sessions),
		Completed:      len(completed),
		CorrectAnswers: correctAnswers,
	}

	scoreSum := 0
	starts := make([]time.Time, len(completed))
	for i, sess := range completed {
		stats.TotalQuestions += sess.TotalQuestions
		if sess.Score != nil {
			scoreSum += *sess.Score
		}
		starts[i] = sess.StartedAt
	}
	if len(completed) > 0 {
		stats.AverageScore = float64(scoreSum) / float64(len(completed))
	}
	stats.Streak = analytics.ComputeStreak(starts, time.Now())
	return stats
}

const (
	recentDocuments = 3
	recentQuizzes   = 3
	recentQuestions = 2
	activityCap     = 8
)

// recentActivity merges the newest documents, completed sessions and
// generated questions into one feed, newest first, capped to eight
// entries. Inputs arrive already sorted newest first.
func recentActivity(documents []models.Document, completed []models.QuizSession, questions []models.Question) []Activity {
	feed := make([]Activity, 0, recentDocuments+recentQuizzes+recentQuestions)

	for _, d := range documents[:min(recentDocuments, len(documents))] {
		feed = append(feed, Activity{
			Type:  "document",
			Title: `Uploaded "` + d.Title + `"`,
			Date:  d.UploadDate,
		})
	}

	for _, sess := range completed[:min(recentQuizzes, len(completed))] {
		title := sess.SessionName
		if title == "" {
			title = "Practice Quiz"
		}
		feed = append(feed, Activity{
			Type:  "quiz",
			Title: title,
			Date:  sess.StartedAt,
			Score: sess.Score,
		})
	}

	for _, q := range questions[:min(recentQuestions, len(questions))] {
		feed = append(feed, Activity{
			Type:  "question",
			Title: "Generated questions",
			Date:  q.CreatedAt,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool { return feed[i].Date.After(feed[j].Date) })
	if len(feed) > activityCap {
		feed = feed[:activityCap]
	}
	return feed
}
