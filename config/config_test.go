package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/esports")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.False(t, cfg.DBAutoSchema)
	assert.Equal(t, 5*time.Second, cfg.DBConnectTimeout)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 0, cfg.RegistrationMinPlayers)
	assert.False(t, cfg.R2.Enabled())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "/tmp/esports.db")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("DB_AUTO_SCHEMA", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("REGISTRATION_MIN_PLAYERS", "5")
	t.Setenv("R2_BUCKET_NAME", "snapshots")
	t.Setenv("R2_ACCOUNT_ID", "acc")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 8081, cfg.ServerPort)
	assert.True(t, cfg.DBAutoSchema)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5, cfg.RegistrationMinPlayers)
	assert.True(t, cfg.R2.Enabled())
	assert.Equal(t, "acc", cfg.R2.AccountID)
}

func TestParseRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Parse()
	require.Error(t, err)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := &Config{
		ServerPort:       70000,
		DBDriver:         "oracle",
		DatabaseURL:      "x",
		DBConnectTimeout: time.Second,
		LogLevel:         "loud",
		LogFormat:        "json",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_PORT")
	assert.Contains(t, err.Error(), "DB_DRIVER")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.NotContains(t, err.Error(), "LOG_FORMAT")
}
