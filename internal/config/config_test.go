package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "my", cfg.NewsCountry)
	assert.Equal(t, 10*time.Minute, cfg.CacheFreshness)
	assert.Equal(t, 256, cfg.CacheSize)
	assert.Equal(t, 30*time.Second, cfg.AITimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CACHE_FRESHNESS", "5m")
	t.Setenv("CACHE_SIZE", "64")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.CacheFreshness)
	assert.Equal(t, 64, cfg.CacheSize)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("PORT", "99999")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("NEWS_TIMEOUT", "soon")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.NewsTimeout)
}
