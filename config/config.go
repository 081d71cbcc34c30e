// Package config assembles the process configuration from the environment.
// It is loaded once at startup and handed to the components that need it.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dododo1295/tonotes-api/utils"
	"github.com/joho/godotenv"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type ServerConfig struct {
	Port            string
	Env             string
	Storage         string
	CORSOrigin      string
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type RedisConfig struct {
	URL      string
	NotesTTL time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Log      LogConfig
}

// Load reads an optional .env file and then the environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            utils.GetEnvAsString("PORT", "8000"),
			Env:             utils.GetEnvAsString("GO_ENV", "development"),
			Storage:         utils.GetEnvAsString("STORAGE_DRIVER", StorageMongo),
			CORSOrigin:      utils.GetEnvAsString("CORS_ALLOWED_ORIGIN", "*"),
			MaxBodyBytes:    utils.GetEnvAsInt64("MAX_BODY_BYTES", 1<<20),
			ShutdownTimeout: utils.GetEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: LoadDatabaseConfig(),
		JWT: JWTConfig{
			Secret:     utils.GetEnvAsString("JWT_SECRET_KEY", ""),
			Expiration: utils.GetEnvAsDuration("JWT_EXPIRATION", 3600*time.Minute),
		},
		Redis: RedisConfig{
			URL:      utils.GetEnvAsString("REDIS_URL", ""),
			NotesTTL: utils.GetEnvAsDuration("NOTES_CACHE_TTL", 5*time.Minute),
		},
		Log: LogConfig{
			Level:  utils.GetEnvAsString("LOG_LEVEL", "info"),
			Format: utils.GetEnvAsString("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsTest() bool {
	return c.Server.Env == "test"
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		if !c.IsTest() {
			return errors.New("JWT_SECRET_KEY is not set")
		}
		c.JWT.Secret = "test_secret_key"
	}
	if c.JWT.Expiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION must be positive, got %s", c.JWT.Expiration)
	}

	switch c.Server.Storage {
	case StorageMongo:
		if c.Database.URI == "" {
			return errors.New("MONGO_URI is not set")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Server.Storage)
	}
	return nil
}
