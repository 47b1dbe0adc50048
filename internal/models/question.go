package models

import (
	"strings"
	"time"
)

const (
	TypeMultipleChoice = "multiple-choice"
	TypeTrueFalse      = "true-false"
	TypeShortAnswer    = "short-answer"
	TypeEssay          = "essay"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question is produced by the external generation pipeline and is
// read-only from this service's perspective.
type Question struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	Question      string    `bson:"question" json:"question"`
	Type          string    `bson:"type" json:"type"`
	Options       []string  `bson:"options" json:"options"`
	CorrectAnswer string    `bson:"correct_answer" json:"correct_answer"`
	Explanation   string    `bson:"explanation" json:"explanation"`
	Difficulty    string    `bson:"difficulty" json:"difficulty"`
	Topic         string    `bson:"topic" json:"topic"`
	DocumentID    string    `bson:"document_id,omitempty" json:"document_id,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// Grade reports whether a submitted answer counts as correct.
// Matching is case-insensitive with surrounding whitespace ignored and
// applies to every question type; there is no partial credit.
func (q *Question) Grade(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.CorrectAnswer))
}

// QuizQuestion is the projection handed to the client when a session
// starts. Correct answers and explanations stay server-side until the
// session is completed.
type QuizQuestion struct {
	ID         string   `json:"id"`
	Question   string   `json:"question"`
	Type       string   `json:"type"`
	Options    []string `json:"options"`
	Topic      string   `json:"topic"`
	Difficulty string   `json:"difficulty"`
}

func (q *Question) Public() QuizQuestion {
	return QuizQuestion{
		ID:         q.ID,
		Question:   q.Question,
		Type:       q.Type,
		Options:    q.Options,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
	}
}
