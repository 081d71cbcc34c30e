package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, map[string]string{
		"JWT_SECRET_KEY": "secret",
		"MONGO_URI":      "mongodb://localhost:27017",
		"GO_ENV":         "",
		"PORT":           "",
		"STORAGE_DRIVER": "",
		"JWT_EXPIRATION": "",
		"REDIS_URL":      "",
	})

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, StorageMongo, cfg.Server.Storage)
	assert.Equal(t, 3600*time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, "notes", cfg.Database.DatabaseName)
	assert.Equal(t, "users", cfg.Database.UsersCollection)
	assert.Equal(t, "notes", cfg.Database.NotesCollection)
	assert.Equal(t, 60*time.Second, cfg.Database.MaxConnIdleTime)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoad_FromEnvFile(t *testing.T) {
	setEnv(t, map[string]string{
		"JWT_SECRET_KEY": "",
		"MONGO_URI":      "",
		"STORAGE_DRIVER": "",
	})

	path := filepath.Join(t.TempDir(), ".env")
	content := "JWT_SECRET_KEY=from-file\nSTORAGE_DRIVER=memory\nJWT_EXPIRATION=2h\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// godotenv never overrides variables that already exist, blank or not.
	os.Unsetenv("JWT_SECRET_KEY")
	os.Unsetenv("STORAGE_DRIVER")
	os.Unsetenv("JWT_EXPIRATION")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, StorageMemory, cfg.Server.Storage)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "missing secret outside tests",
			cfg: Config{
				Server: ServerConfig{Storage: StorageMemory},
				JWT:    JWTConfig{Expiration: time.Hour},
			},
			wantErr: "JWT_SECRET_KEY is not set",
		},
		{
			name: "mongo without uri",
			cfg: Config{
				Server: ServerConfig{Storage: StorageMongo},
				JWT:    JWTConfig{Secret: "s", Expiration: time.Hour},
			},
			wantErr: "MONGO_URI is not set",
		},
		{
			name: "unknown storage",
			cfg: Config{
				Server: ServerConfig{Storage: "sqlite"},
				JWT:    JWTConfig{Secret: "s", Expiration: time.Hour},
			},
			wantErr: `unknown STORAGE_DRIVER "sqlite"`,
		},
		{
			name: "non-positive expiration",
			cfg: Config{
				Server: ServerConfig{Storage: StorageMemory},
				JWT:    JWTConfig{Secret: "s"},
			},
			wantErr: "JWT_EXPIRATION must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_TestEnvGetsSecret(t *testing.T) {
	cfg := Config{
		Server: ServerConfig{Env: "test", Storage: StorageMemory},
		JWT:    JWTConfig{Expiration: time.Hour},
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "test_secret_key", cfg.JWT.Secret)
}
