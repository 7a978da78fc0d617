package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/perch")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ScoreCacheTTL)
	assert.Equal(t, 30, cfg.ReactionRatePerMinute)
	assert.Equal(t, 168*time.Hour, cfg.SessionMaxAge)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadShortSessionSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoadBadReactionRate(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REACTION_RATE_PER_MINUTE", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REACTION_RATE_PER_MINUTE")
}
