package config

import (
	"time"

	"github.com/dododo1295/tonotes-api/utils"
)

type DatabaseConfig struct {
	URI              string
	DatabaseName     string
	UsersCollection  string
	NotesCollection  string
	MaxPoolSize      uint64
	MinPoolSize      uint64
	MaxConnIdleTime  time.Duration
	OperationTimeout time.Duration
	RetryWrites      bool
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:              utils.GetEnvAsString("MONGO_URI", ""),
		DatabaseName:     utils.GetEnvAsString("MONGO_DB", "notes"),
		UsersCollection:  utils.GetEnvAsString("USERS_COLLECTION", "users"),
		NotesCollection:  utils.GetEnvAsString("NOTES_COLLECTION", "notes"),
		MaxPoolSize:      utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:      utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime:  utils.GetEnvAsDuration("MONGO_MAX_CONN_IDLE_TIME", 60*time.Second),
		OperationTimeout: utils.GetEnvAsDuration("MONGO_OPERATION_TIMEOUT", 5*time.Second),
		RetryWrites:      utils.GetEnvAsBool("MONGO_RETRY_WRITES", true),
	}
}
