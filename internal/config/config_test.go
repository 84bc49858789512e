package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRuntimeConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_ACCESS_TTL", "")

	cfg, err := LoadRuntimeConfig()

	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "tablebook.db", cfg.DatabaseURL)
	assert.Equal(t, 24*time.Hour, cfg.JWTAccessTTL)
}

func TestLoadRuntimeConfig_InvalidTTL(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL", "yesterday")

	_, err := LoadRuntimeConfig()

	assert.Error(t, err)
}

func TestLoadRuntimeConfig_ProdRejectsDefaultSecret(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadRuntimeConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadRuntimeConfig_ProdWithRealSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "a-real-32-char-production-secret")

	cfg, err := LoadRuntimeConfig()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.AppEnv)
}
