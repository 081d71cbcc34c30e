package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dododo1295/tonotes-api/model"
	"github.com/redis/go-redis/v9"
)

// NotesCache holds an owner's full note list between writes. Every
// Invalidate bumps the owner's version; SetNotes only stores a list read
// under the version it was given, so a list loaded before a write can never
// replace that write's invalidation.
type NotesCache interface {
	GetNotes(ctx context.Context, userID string) ([]*model.Note, bool, error)
	Version(ctx context.Context, userID string) (int64, error)
	SetNotes(ctx context.Context, userID string, version int64, notes []*model.Note) error
	Invalidate(ctx context.Context, userID string) error
}

// NoopNotesCache is used when no Redis URL is configured.
type NoopNotesCache struct{}

func (NoopNotesCache) GetNotes(context.Context, string) ([]*model.Note, bool, error) {
	return nil, false, nil
}

func (NoopNotesCache) Version(context.Context, string) (int64, error) { return 0, nil }

func (NoopNotesCache) SetNotes(context.Context, string, int64, []*model.Note) error { return nil }

func (NoopNotesCache) Invalidate(context.Context, string) error { return nil }

type RedisNotesCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisClient parses redisURL and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func NewRedisNotesCache(client *redis.Client, ttl time.Duration) *RedisNotesCache {
	return &RedisNotesCache{Client: client, TTL: ttl}
}

// versionTTL outlives any list TTL. An expired version reads as 0, which
// only ever causes a skipped store.
const versionTTL = 24 * time.Hour

func notesKey(userID string) string {
	return "notes:" + userID
}

func versionKey(userID string) string {
	return "notes:" + userID + ":version"
}

func (c *RedisNotesCache) GetNotes(ctx context.Context, userID string) ([]*model.Note, bool, error) {
	data, err := c.Client.Get(ctx, notesKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cached notes: %w", err)
	}

	var notes []*model.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, false, fmt.Errorf("decode cached notes: %w", err)
	}
	return notes, true, nil
}

func (c *RedisNotesCache) Version(ctx context.Context, userID string) (int64, error) {
	version, err := c.Client.Get(ctx, versionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read notes version: %w", err)
	}
	return version, nil
}

// SetNotes stores notes only while the owner's version still equals version.
// A concurrent Invalidate aborts the transaction and the list is dropped.
func (c *RedisNotesCache) SetNotes(ctx context.Context, userID string, version int64, notes []*model.Note) error {
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}

	vkey := versionKey(userID)
	err = c.Client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vkey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, notesKey(userID), data, c.TTL)
			return nil
		})
		return err
	}, vkey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cache notes: %w", err)
	}
	return nil
}

func (c *RedisNotesCache) Invalidate(ctx context.Context, userID string) error {
	vkey := versionKey(userID)
	_, err := c.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, vkey)
		pipe.Expire(ctx, vkey, versionTTL)
		pipe.Del(ctx, notesKey(userID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate cached notes: %w", err)
	}
	return nil
}
