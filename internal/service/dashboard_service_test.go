package service

import (
	"testing"
	"time"

	"studyquiz-service/internal/models"
)

func TestDocumentStats(t *testing.T) {
	now := time.Now()
	documents := []models.Document{
		{Title: "fresh", Processed: true, UploadDate: now.AddDate(0, 0, -1)},
		{Title: "pending", Processed: false, UploadDate: now.AddDate(0, 0, -2)},
		{Title: "old", Processed: true, UploadDate: now.AddDate(0, 0, -30)},
	}

	stats := documentStats(documents)

	if stats.Total != 3 || stats.Processed != 2 || stats.ThisWeek != 2 {
		t.Errorf("documentStats() = %+v", stats)
	}
}

func TestQuestionStats(t *testing.T) {
	questions := []models.Question{
		{Type: models.TypeMultipleChoice, Difficulty: models.DifficultyEasy},
		{Type: models.TypeMultipleChoice, Difficulty: models.DifficultyMedium},
		{Type: models.TypeTrueFalse, Difficulty: models.DifficultyMedium},
		{Type: models.TypeEssay, Difficulty: models.DifficultyHard},
	}

	stats := questionStats(questions)

	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.ByDifficulty.Easy != 1 || stats.ByDifficulty.Medium != 2 || stats.ByDifficulty.Hard != 1 {
		t.Errorf("ByDifficulty = %+v", stats.ByDifficulty)
	}
	if stats.ByType[models.TypeMultipleChoice] != 2 || stats.ByType[models.TypeTrueFalse] != 1 || stats.ByType[models.TypeEssay] != 1 {
		t.Errorf("ByType = %v", stats.ByType)
	}
}

func completedSession(name string, startedAt time.Time, total, score int) models.QuizSession {
	completedAt := startedAt.Add(10 * time.Minute)
	return models.QuizSession{
		SessionName:    name,
		TotalQuestions: total,
		Status:         models.SessionCompleted,
		StartedAt:      startedAt,
		CompletedAt:    &completedAt,
		Score:          &score,
	}
}

func TestQuizStats(t *testing.T) {
	now := time.Now()
	completed := []models.QuizSession{
		completedSession("a", now, 10, 80),
		completedSession("b", now.AddDate(0, 0, -1), 5, 60),
	}
	sessions := append([]models.QuizSession{
		{Status: models.SessionInProgress, StartedAt: now, TotalQuestions: 4},
	}, completed...)

	stats := quizStats(sessions, completed, 11)

	if stats.Total != 3 || stats.Completed != 2 {
		t.Errorf("counts = %+v", stats)
	}
	if stats.AverageScore != 70 {
		t.Errorf("AverageScore = %v, want 70", stats.AverageScore)
	}
	if stats.TotalQuestions != 15 || stats.CorrectAnswers != 11 {
		t.Errorf("aggregates = %+v", stats)
	}
	// Completed sessions today and yesterday.
	if stats.Streak != 2 {
		t.Errorf("Streak = %d, want 2", stats.Streak)
	}
}

func TestRecentActivityMergeAndCap(t *testing.T) {
	now := time.Now()
	documents := make([]models.Document, 4)
	for i := range documents {
		documents[i] = models.Document{
			Title:      "doc",
			UploadDate: now.Add(-time.Duration(i) * time.Hour),
		}
	}
	completed := []models.QuizSession{
		completedSession("Evening Review", now.Add(-30*time.Minute), 5, 80),
		completedSession("", now.Add(-90*time.Minute), 5, 40),
		completedSession("Old Quiz", now.Add(-40*time.Hour), 5, 100),
		completedSession("Too Old To Show", now.Add(-80*time.Hour), 5, 100),
	}
	questions := []models.Question{
		{CreatedAt: now.Add(-10 * time.Minute)},
		{CreatedAt: now.Add(-20 * time.Minute)},
		{CreatedAt: now.Add(-25 * time.Minute)},
	}

	feed := recentActivity(documents, completed, questions)

	// 3 documents + 3 quizzes + 2 question events.
	if len(feed) != 8 {
		t.Fatalf("len(feed) = %d, want 8", len(feed))
	}
	for i := 1; i < len(feed); i++ {
		if feed[i].Date.After(feed[i-1].Date) {
			t.Errorf("feed not sorted descending at %d", i)
		}
	}
	if feed[0].Type != "document" {
		t.Errorf("newest entry should be the freshest document, got %+v", feed[0])
	}

	var quizTitles []string
	for _, entry := range feed {
		if entry.Type == "quiz" {
			quizTitles = append(quizTitles, entry.Title)
		}
	}
	if len(quizTitles) != 3 {
		t.Fatalf("expected 3 quiz entries, got %d", len(quizTitles))
	}
	// An unnamed session falls back to a generic title.
	if quizTitles[1] != "Practice Quiz" {
		t.Errorf("unnamed session title = %q", quizTitles[1])
	}
}

func TestRecentActivityEmptyInputs(t *testing.T) {
	feed := recentActivity(nil, nil, nil)
	if len(feed) != 0 {
		t.Errorf("expected empty feed, got %d entries", len(feed))
	}
}
