package models

import "time"

// QuizResponse tracks one question's outcome within one session.
// Exactly one row exists per question assigned to a session, created
// together with the session; a submission fills the row in place and a
// resubmission overwrites it (last write wins).
type QuizResponse struct {
	ID         string     `bson:"_id,omitempty" json:"id"`
	SessionID  string     `bson:"session_id" json:"session_id"`
	QuestionID string     `bson:"question_id" json:"question_id"`
	UserID     string     `bson:"user_id" json:"user_id"`
	UserAnswer *string    `bson:"user_answer,omitempty" json:"user_answer,omitempty"`
	IsCorrect  *bool      `bson:"is_correct,omitempty" json:"is_correct,omitempty"`
	AnsweredAt *time.Time `bson:"answered_at,omitempty" json:"answered_at,omitempty"`
}

func (r *QuizResponse) Correct() bool {
	return r.IsCorrect != nil && *r.IsCorrect
}

func (r *QuizResponse) Answer() string {
	if r.UserAnswer == nil {
		return ""
	}
	return *r.UserAnswer
}
