package repository

import (
	"context"
	"time"

	"studyquiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("quiz_sessions")}
}

func (r *SessionRepository) Create(ctx context.Context, session *models.QuizSession) error {
	_, err := r.Col.InsertOne(ctx, session)
	return err
}

func (r *SessionRepository) FindByID(ctx context.Context, id, userID string) (*models.QuizSession, error) {
	var session models.QuizSession
	err := r.Col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Complete marks a session finished with its score. Calling it again
// overwrites the previous completion state (recompute-on-recall).
func (r *SessionRepository) Complete(ctx context.Context, id, userID string, score int, completedAt time.Time) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{
			"status":       models.SessionCompleted,
			"score":        score,
			"completed_at": completedAt,
		}})
	return err
}

// FindByOwner returns every session for the owner, newest first.
func (r *SessionRepository) FindByOwner(ctx context.Context, userID string) ([]models.QuizSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "started_at", Value: -1}})
	return r.find(ctx, bson.M{"user_id": userID}, opts)
}

// FindCompletedSince returns the owner's completed sessions started at
// or after the cutoff, oldest first.
func (r *SessionRepository) FindCompletedSince(ctx context.Context, userID string, since time.Time) ([]models.QuizSession, error) {
	query := bson.M{
		"user_id":    userID,
		"status":     models.SessionCompleted,
		"started_at": bson.M{"$gte": since},
	}
	opts := options.Find().SetSort(bson.D{{Key: "started_at", Value: 1}})
	return r.find(ctx, query, opts)
}

func (r *SessionRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]models.QuizSession, error) {
	cur, err := r.Col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var sessions []models.QuizSession
	for cur.Next(ctx) {
		var s models.QuizSession
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, cur.Err()
}
