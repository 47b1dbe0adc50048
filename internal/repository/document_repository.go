package repository

import (
	"context"

	"studyquiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DocumentRepository struct {
	Col *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{Col: db.Collection("documents")}
}

// FindByOwner returns the owner's documents, newest upload first.
func (r *DocumentRepository) FindByOwner(ctx context.Context, userID string) ([]models.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "upload_date", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var documents []models.Document
	for cur.Next(ctx) {
		var d models.Document
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		documents = append(documents, d)
	}
	return documents, cur.Err()
}
