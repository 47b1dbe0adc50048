package repository

import (
	"context"
	"time"

	"studyquiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ResponseRepository struct {
	Col *mongo.Collection
}

func NewResponseRepository(db *mongo.Database) *ResponseRepository {
	return &ResponseRepository{Col: db.Collection("quiz_responses")}
}

// CreateMany inserts the pre-allocated response stubs for a new
// session, one per selected question.
func (r *ResponseRepository) CreateMany(ctx context.Context, responses []models.QuizResponse) error {
	docs := make([]interface{}, len(responses))
	for i := range responses {
		docs[i] = responses[i]
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

// Fill records an answer against the existing response row for
// (session, question, owner). It never inserts; the returned matched
// count is zero when the question was not assigned to the session.
func (r *ResponseRepository) Fill(ctx context.Context, sessionID, questionID, userID, answer string, isCorrect bool, answeredAt time.Time) (int64, error) {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{
			"session_id":  sessionID,
			"question_id": questionID,
			"user_id":     userID,
		},
		bson.M{"$set": bson.M{
			"user_answer": answer,
			"is_correct":  isCorrect,
			"answered_at": answeredAt,
		}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *ResponseRepository) FindBySession(ctx context.Context, sessionID, userID string) ([]models.QuizResponse, error) {
	return r.find(ctx, bson.M{"session_id": sessionID, "user_id": userID})
}

// FindBySessions returns the responses of several sessions in one
// query, used by the analytics aggregation.
func (r *ResponseRepository) FindBySessions(ctx context.Context, sessionIDs []string) ([]models.QuizResponse, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"session_id": bson.M{"$in": sessionIDs}})
}

func (r *ResponseRepository) find(ctx context.Context, query bson.M) ([]models.QuizResponse, error) {
	cur, err := r.Col.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var responses []models.QuizResponse
	for cur.Next(ctx) {
		var resp models.QuizResponse
		if err := cur.Decode(&resp); err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, cur.Err()
}
