package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/bistro")
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.NotEmpty(t, cfg.AllowedOrigins)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_MissingTokenSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/bistro")
	t.Setenv("ACCESS_TOKEN_SECRET", "")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_TokenTTLOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
}

func TestLoad_InvalidTokenTTLFallsBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TOKEN_TTL", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
}

func TestLoad_ParsesOrigins(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ALLOWED_ORIGINS", "https://bistro.example.com, https://admin.bistro.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://bistro.example.com", "https://admin.bistro.example.com"}, cfg.AllowedOrigins)
}
