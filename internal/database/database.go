package database

import (
	"context"
	"fmt"
	"time"

	"github.com/coinquest/core/internal/config"
	"github.com/coinquest/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB is the global database handle.
var DB *mongo.Database

var client *mongo.Client

// Connect opens a MongoDB connection, verifies it, and ensures indexes.
func Connect(cfg *config.AppConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cl, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connection failed: %w", err)
	}
	if err := cl.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	db := cl.Database(cfg.Mongo.Database)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	client = cl
	DB = db
	return db, nil
}

// Disconnect closes the MongoDB connection.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// Ping verifies the connection is still alive.
func Ping(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("mongo not connected")
	}
	return client.Ping(ctx, readpref.Primary())
}

// ensureIndexes creates the regular indexes the app relies on. The vector
// index over docchunks.embedding is an Atlas Search index and is managed
// out-of-band (see config mongo.vector_index).
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	docchunks := db.Collection(models.DocSummaryModel{}.CollectionName())
	_, err := docchunks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}
