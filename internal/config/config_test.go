package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "")

	cfg := Load()

	require.Equal(t, "4000", cfg.AppPort)
	require.Equal(t, "dev_secret_change_me", cfg.JWTSecret)
	require.Equal(t, "development", cfg.AppEnv)
	require.False(t, cfg.Production())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, "super-secret", cfg.JWTSecret)
	require.True(t, cfg.Production())
}
