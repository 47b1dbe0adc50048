package repository

import (
	"context"

	"studyquiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FeedbackRepository struct {
	Col *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{Col: db.Collection("feedback")}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	_, err := r.Col.InsertOne(ctx, feedback)
	return err
}

// FindByOwner returns the owner's feedback, newest first, optionally
// scoped to a single question.
func (r *FeedbackRepository) FindByOwner(ctx context.Context, userID, questionID string) ([]models.Feedback, error) {
	query := bson.M{"user_id": userID}
	if questionID != "" {
		query["question_id"] = questionID
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.Col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var feedback []models.Feedback
	for cur.Next(ctx) {
		var f models.Feedback
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		feedback = append(feedback, f)
	}
	return feedback, cur.Err()
}
