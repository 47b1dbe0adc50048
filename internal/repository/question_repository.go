package repository

import (
	"context"

	"studyquiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QuestionFilter narrows a question pool lookup. Zero values mean the
// dimension is not filtered.
type QuestionFilter struct {
	DocumentID string
	Difficulty string
	Types      []string
	Limit      int64
}

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

// FindByOwner returns the owner's questions matching the filter,
// most recently created first.
func (r *QuestionRepository) FindByOwner(ctx context.Context, userID string, filter QuestionFilter) ([]models.Question, error) {
	query := bson.M{"user_id": userID}
	if filter.DocumentID != "" {
		query["document_id"] = filter.DocumentID
	}
	if filter.Difficulty != "" {
		query["difficulty"] = filter.Difficulty
	}
	if len(filter.Types) > 0 {
		query["type"] = bson.M{"$in": filter.Types}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cur, err := r.Col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// FindByIDs fetches a batch of questions keyed by ID, used when joining
// responses back to their questions at completion or aggregation time.
func (r *QuestionRepository) FindByIDs(ctx context.Context, ids []string) (map[string]models.Question, error) {
	byID := make(map[string]models.Question, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		byID[q.ID] = q
	}
	return byID, cur.Err()
}
