package datainput

import (
	"context"
	"errors"
	"time"

	"livpulse/internal/common/models"
	"livpulse/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSubmissionRepository persists submissions in the "submissions"
// collection.
type MongoSubmissionRepository struct {
	collection *mongo.Collection
}

func NewMongoSubmissionRepository(db *database.MongodbDB) *MongoSubmissionRepository {
	return &MongoSubmissionRepository{
		collection: db.DB.Collection("submissions"),
	}
}

func (r *MongoSubmissionRepository) Insert(ctx context.Context, submissions []Submission) error {
	docs := make([]interface{}, len(submissions))
	for i, s := range submissions {
		docs[i] = s
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *MongoSubmissionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]Submission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"submittedBy": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []Submission
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Submission{}
	}
	return out, nil
}

func (r *MongoSubmissionRepository) ListByCategory(ctx context.Context, category string, page, limit int) ([]Submission, int, error) {
	filter := bson.M{"category": category}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var out []Submission
	if err := cursor.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	if out == nil {
		out = []Submission{}
	}
	return out, int(total), nil
}

func (r *MongoSubmissionRepository) Review(ctx context.Context, id string, status models.SubmissionStatus, reviewer, comments string, at time.Time) (Submission, error) {
	// Filtering on pending status makes the decided-once rule atomic: a
	// second reviewer matches nothing and falls through to the error path.
	filter := bson.M{"_id": id, "status": models.SubmissionPending}
	update := bson.M{"$set": bson.M{
		"status":         status,
		"reviewedBy":     reviewer,
		"reviewedAt":     at,
		"reviewComments": comments,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Submission
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return Submission{}, err
	}

	count, countErr := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if countErr != nil {
		return Submission{}, countErr
	}
	if count > 0 {
		return Submission{}, ErrAlreadyReviewed
	}
	return Submission{}, ErrSubmissionNotFound
}
