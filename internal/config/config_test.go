package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("JWT_EXPIRE_HOURS", "")
	t.Setenv("AUTH_RATE_WINDOW", "")

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "sorte", cfg.MongoDB)
	require.Equal(t, 24*time.Hour, cfg.JWTExpire)
	require.Equal(t, time.Minute, cfg.AuthRateWindow)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("JWT_EXPIRE_HOURS", "2")
	t.Setenv("AUTH_RATE_LIMIT", "5")

	cfg := Load()
	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, 2*time.Hour, cfg.JWTExpire)
	require.Equal(t, 5, cfg.AuthRateLimit)
}

func TestValidateRejectsDefaultSecretInProduction(t *testing.T) {
	cfg := &Config{AppEnv: "production", JWTSecret: defaultJWTSecret, JWTExpire: time.Hour}
	require.Error(t, cfg.Validate())

	cfg.JWTSecret = "a-real-secret"
	require.NoError(t, cfg.Validate())
}
