package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dododo1295/tonotes-api/config"
	"github.com/dododo1295/tonotes-api/model"
	"github.com/dododo1295/tonotes-api/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo struct {
	MongoCollection *mongo.Collection
	Timeout         time.Duration
}

func GetUserRepo(client *mongo.Client, cfg config.DatabaseConfig) *UserRepo {
	return &UserRepo{
		MongoCollection: client.Database(cfg.DatabaseName).Collection(cfg.UsersCollection),
		Timeout:         cfg.OperationTimeout,
	}
}

// AddUser inserts user. A duplicate email reports ErrDuplicateEmail.
func (r *UserRepo) AddUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.Timeout)
	defer cancel()

	if _, err := r.MongoCollection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		utils.TrackError("database", "user_insert_failed")
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindUserByEmail returns nil, nil when no user has the address.
func (r *UserRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.Timeout)
	defer cancel()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_failed")
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}
