package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/dododo1295/tonotes-api/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopNotesCache(t *testing.T) {
	ctx := context.Background()
	var cache NotesCache = NoopNotesCache{}

	require.NoError(t, cache.SetNotes(ctx, "u1", 0, []*model.Note{{ID: "n1"}}))
	notes, hit, err := cache.GetNotes(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, notes)
	assert.NoError(t, cache.Invalidate(ctx, "u1"))
}

func TestNewRedisClient_BadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not a url")
	assert.Error(t, err)
}

// Runs against a live Redis when REDIS_URL is set.
func TestRedisNotesCache(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set")
	}

	ctx := context.Background()
	client, err := NewRedisClient(ctx, redisURL)
	require.NoError(t, err)
	defer client.Close()

	cache := NewRedisNotesCache(client, time.Minute)
	userID := uuid.NewString()
	defer client.Del(ctx, notesKey(userID), versionKey(userID))

	_, hit, err := cache.GetNotes(ctx, userID)
	require.NoError(t, err)
	assert.False(t, hit)

	stored := []*model.Note{
		{ID: "n1", UserID: userID, Title: "T", Content: "C", Tags: []string{}, IsPinned: true},
	}
	version, err := cache.Version(ctx, userID)
	require.NoError(t, err)
	require.NoError(t, cache.SetNotes(ctx, userID, version, stored))

	notes, hit, err := cache.GetNotes(ctx, userID)
	require.NoError(t, err)
	assert.True(t, hit)
	require.Len(t, notes, 1)
	assert.Equal(t, "n1", notes[0].ID)
	assert.True(t, notes[0].IsPinned)

	require.NoError(t, cache.Invalidate(ctx, userID))
	_, hit, err = cache.GetNotes(ctx, userID)
	require.NoError(t, err)
	assert.False(t, hit)

	// A list read under the old version arrives after the invalidation.
	require.NoError(t, cache.SetNotes(ctx, userID, version, stored))
	_, hit, err = cache.GetNotes(ctx, userID)
	require.NoError(t, err)
	assert.False(t, hit, "stale list must not be stored")

	current, err := cache.Version(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, version+1, current)
}
