package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "finance_console", cfg.Mongo.Database)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadWith_GeneratesDevelopmentSecret(t *testing.T) {
	first, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)
	second, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.True(t, first.EphemeralJWTSecret)
	assert.GreaterOrEqual(t, len(first.JWTSecret), minJWTSecretLen)
	assert.NotEqual(t, first.JWTSecret, second.JWTSecret)
}

func TestLoadWith_KeepsConfiguredDevelopmentSecret(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "dev",
	}))
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.JWTSecret)
	assert.False(t, cfg.EphemeralJWTSecret)
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":         "production",
		"JWT_SECRET":  "0123456789abcdef0123456789abcdef",
		"TOKEN_TTL":   "2h",
		"SESSION_TTL": "5m",
		"REDIS_DB":    "3",
	}))
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoadWith_RequiresSecretOutsideDevelopment(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV": "production",
	}))
	assert.ErrorContains(t, err, "JWT_SECRET")

	_, err = LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":        "production",
		"JWT_SECRET": "short",
	}))
	assert.ErrorContains(t, err, "at least")
}

func TestLoadWith_RejectsNonPositiveTTL(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_TTL": "0s",
	}))
	assert.ErrorContains(t, err, "SESSION_TTL")
}
