package utils

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/event"
)

func TestTrackNoteOperation(t *testing.T) {
	before := testutil.ToFloat64(NotesOperationsTotal.WithLabelValues("create"))
	TrackNoteOperation("create")
	assert.Equal(t, before+1, testutil.ToFloat64(NotesOperationsTotal.WithLabelValues("create")))
}

func TestTrackAuthAttempt(t *testing.T) {
	before := testutil.ToFloat64(AuthAttempts.WithLabelValues("failure", "login"))
	TrackAuthAttempt("failure", "login")
	assert.Equal(t, before+1, testutil.ToFloat64(AuthAttempts.WithLabelValues("failure", "login")))
}

func TestMongoPoolMonitor(t *testing.T) {
	monitor := MongoPoolMonitor()
	open := testutil.ToFloat64(MongoOpenConnections)
	busy := testutil.ToFloat64(MongoCheckedOutConnections)

	monitor.Event(&event.PoolEvent{Type: event.ConnectionCreated})
	monitor.Event(&event.PoolEvent{Type: event.GetSucceeded})
	assert.Equal(t, open+1, testutil.ToFloat64(MongoOpenConnections))
	assert.Equal(t, busy+1, testutil.ToFloat64(MongoCheckedOutConnections))

	monitor.Event(&event.PoolEvent{Type: event.ConnectionReturned})
	monitor.Event(&event.PoolEvent{Type: event.ConnectionClosed})
	assert.Equal(t, open, testutil.ToFloat64(MongoOpenConnections))
	assert.Equal(t, busy, testutil.ToFloat64(MongoCheckedOutConnections))
}

func TestGetCPUUsage(t *testing.T) {
	usage := GetCPUUsage()
	assert.GreaterOrEqual(t, usage, 0.0)
	assert.LessOrEqual(t, usage, 100.0)
}
