package models

import "time"

const (
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
)

// QuizSession is one bounded attempt at a fixed set of questions.
// TotalQuestions is frozen at creation; Score and CompletedAt are set
// only when the session is completed.
type QuizSession struct {
	ID             string     `bson:"_id,omitempty" json:"id"`
	UserID         string     `bson:"user_id" json:"user_id"`
	DocumentID     string     `bson:"document_id,omitempty" json:"document_id,omitempty"`
	SessionName    string     `bson:"session_name,omitempty" json:"session_name,omitempty"`
	TotalQuestions int        `bson:"total_questions" json:"total_questions"`
	Status         string     `bson:"status" json:"status"`
	StartedAt      time.Time  `bson:"started_at" json:"started_at"`
	CompletedAt    *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	Score          *int       `bson:"score,omitempty" json:"score,omitempty"`
}

func (s *QuizSession) Completed() bool {
	return s.Status == SessionCompleted
}
