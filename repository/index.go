package repository

import (
	"context"
	"fmt"

	"github.com/dododo1295/tonotes-api/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func userIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("unique_email").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("unique_user_id").
				SetUnique(true),
		},
	}
}

func noteIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		// Owner listing in store order.
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: 1},
			},
			Options: options.Index().
				SetName("user_notes_created"),
		},
	}
}

// SetupIndexes creates the indexes both collections rely on. The unique
// email index is what turns concurrent signups for one address into a
// duplicate key error.
func SetupIndexes(ctx context.Context, db *mongo.Database, cfg config.DatabaseConfig) error {
	ctx, cancel := withTimeout(ctx, cfg.OperationTimeout)
	defer cancel()

	if _, err := db.Collection(cfg.UsersCollection).Indexes().CreateMany(ctx, userIndexes()); err != nil {
		return fmt.Errorf("failed to create users indexes: %w", err)
	}

	if _, err := db.Collection(cfg.NotesCollection).Indexes().CreateMany(ctx, noteIndexes()); err != nil {
		return fmt.Errorf("failed to create notes indexes: %w", err)
	}

	return nil
}
