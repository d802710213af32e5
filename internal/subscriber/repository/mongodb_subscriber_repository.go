package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	apperrors "github.com/allisson/mailinglist/internal/errors"
	"github.com/allisson/mailinglist/internal/subscriber/domain"
)

// subscriberDocument is the stored shape of a subscriber.
type subscriberDocument struct {
	Name  string `bson:"name"`
	Email string `bson:"email"`
}

// MongoDBSubscriberRepository stores subscribers as documents in a MongoDB collection.
type MongoDBSubscriberRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoDBSubscriberRepository creates a repository writing to database.collection.
func NewMongoDBSubscriberRepository(client *mongo.Client, database, collection string) *MongoDBSubscriberRepository {
	return &MongoDBSubscriberRepository{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}
}

// Add inserts a {name, email} document.
func (r *MongoDBSubscriberRepository) Add(ctx context.Context, user domain.UserData) error {
	doc := subscriberDocument{
		Name:  user.Name,
		Email: user.Email,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return apperrors.Storage(err, "failed to add subscriber")
	}
	return nil
}

// Ping checks that the primary is reachable.
func (r *MongoDBSubscriberRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx, readpref.Primary()); err != nil {
		return apperrors.Storage(err, "failed to ping mongodb")
	}
	return nil
}
