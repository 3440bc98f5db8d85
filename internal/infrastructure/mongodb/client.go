package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/healthplate/backend/config"
)

var ErrConnectFailed = errors.New("failed to connect to mongodb")

const (
	usersCollection = "users"
	mealsCollection = "meals"
	postsCollection = "posts"
)

// Connect dials MongoDB with the configured pool limits, retrying a few
// times before giving up, and returns a handle to the application database.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURL).
		SetConnectTimeout(cfg.MongoTimeout).
		SetMaxPoolSize(cfg.MongoMaxPool).
		SetMinPoolSize(cfg.MongoMinPool).
		SetRetryWrites(true).
		SetRetryReads(true)

	for i := 0; i < cfg.MongoRetries; i++ {
		client, err := mongo.Connect(opts)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return client.Database(cfg.MongoDatabase), nil
			}
			_ = client.Disconnect(ctx)
		}
		time.Sleep(cfg.MongoRetryDelay)
	}
	return nil, ErrConnectFailed
}

// EnsureIndexes creates the indexes the repositories rely on. The unique
// email index is what makes signup's duplicate check race-free.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = db.Collection(postsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
