package models

import "time"

type Feedback struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	QuestionID   string    `bson:"question_id" json:"question_id"`
	FeedbackType string    `bson:"feedback_type" json:"feedback_type"`
	Rating       int       `bson:"rating" json:"rating"`
	Comment      string    `bson:"comment" json:"comment"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
