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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
	Timeout         time.Duration
}

func GetNotesRepo(client *mongo.Client, cfg config.DatabaseConfig) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(cfg.DatabaseName).Collection(cfg.NotesCollection),
		Timeout:         cfg.OperationTimeout,
	}
}

func ownerFilter(noteID, userID string) bson.M {
	return bson.M{
		"_id":     noteID,
		"user_id": userID,
	}
}

// CreateNote inserts a note
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if note.UserID == "" {
		return errors.New("user ID is required")
	}

	ctx, cancel := withTimeout(ctx, r.Timeout)
	defer cancel()

	if _, err := r.MongoCollection.InsertOne(ctx, note); err != nil {
		utils.TrackError("database", "note_insert_failed")
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// GetUserNotes retrieves all notes for a user, oldest first
func (r *NotesRepo) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "note_list_failed")
		return nil, fmt.Errorf("find notes: %w", err)
	}
	defer cursor.Close(ctx)

	notes := make([]*model.Note, 0)
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return notes, nil
}

// UpdateNote sets only the supplied fields and returns the updated note.
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID, userID string, update model.NoteUpdate) (*model.Note, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.SetTags {
		set["tags"] = model.NormalizeTags(update.Tags)
	}
	if update.IsPinned != nil {
		set["is_pinned"] = *update.IsPinned
	}

	ctx, cancel := withTimeout(ctx, r.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var note model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx, ownerFilter(noteID, userID), bson.M{"$set": set}, opts).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "note_update_failed")
		return nil, fmt.Errorf("update note: %w", err)
	}
	return &note, nil
}

// DeleteNote removes a note owned by userID
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx, r.Timeout)
	defer cancel()

	result, err := r.MongoCollection.DeleteOne(ctx, ownerFilter(noteID, userID))
	if err != nil {
		utils.TrackError("database", "note_delete_failed")
		return fmt.Errorf("delete note: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
