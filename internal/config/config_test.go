package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("TOKEN_TTL_HOURS", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("TOKEN_TTL_HOURS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "todo.db", cfg.DatabaseURL)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
}

func TestLoadParsesTTLHours(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL_HOURS", "12")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
}

func TestLoadIgnoresBadTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL_HOURS", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
}
