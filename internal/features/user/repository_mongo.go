package user

import (
	"context"
	"errors"

	"livpulse/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepository persists accounts in the "users" collection.
type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *database.MongodbDB) *MongoUserRepository {
	return &MongoUserRepository{
		collection: db.DB.Collection("users"),
	}
}

// EnsureSeeds inserts the demo accounts into an empty collection.
func (r *MongoUserRepository) EnsureSeeds(ctx context.Context, seeds []User) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(seeds))
	for i, u := range seeds {
		docs[i] = u
	}
	_, err = r.collection.InsertMany(ctx, docs)
	return err
}

func (r *MongoUserRepository) List(ctx context.Context) ([]User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []User
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []User{}
	}
	return out, nil
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) FindDuplicate(ctx context.Context, username, email, excludeID string) (User, error) {
	var clauses []bson.M
	if username != "" {
		clauses = append(clauses, bson.M{"username": username})
	}
	if email != "" {
		clauses = append(clauses, bson.M{"email": email})
	}
	if len(clauses) == 0 {
		return User{}, ErrUserNotFound
	}

	filter := bson.M{"_id": bson.M{"$ne": excludeID}, "$or": clauses}
	return r.findOne(ctx, filter)
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (User, error) {
	var u User
	err := r.collection.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *MongoUserRepository) Insert(ctx context.Context, u User) error {
	_, err := r.collection.InsertOne(ctx, u)
	return err
}

func (r *MongoUserRepository) Update(ctx context.Context, u User) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
