// Package config loads server configuration from the environment, with a
// .env file picked up when present.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config for the whole service. Everything has a sensible default except
// the provider credentials.
type Config struct {
	Port string

	NewsAPIKey     string
	NewsBaseURL    string
	NewsCountry    string
	NewsTimeout    time.Duration
	CacheFreshness time.Duration
	CacheSize      int

	AIEndpoint string
	AIAPIKey   string
	AIModel    string
	AITimeout  time.Duration

	// RedisAddr switches the retrieval cache to Redis when set; empty
	// means the in-process cache.
	RedisAddr string
	// BadgerPath locates the article content cache; empty means in-memory.
	BadgerPath string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		NewsAPIKey:     os.Getenv("NEWS_API_KEY"),
		NewsBaseURL:    getEnv("NEWS_API_BASE_URL", "https://newsapi.org/v2"),
		NewsCountry:    getEnv("NEWS_COUNTRY", "my"),
		NewsTimeout:    getDuration("NEWS_TIMEOUT", 10*time.Second),
		CacheFreshness: getDuration("CACHE_FRESHNESS", 10*time.Minute),
		CacheSize:      getInt("CACHE_SIZE", 256),
		AIEndpoint:     getEnv("AI_ENDPOINT", "https://openrouter.ai/api/v1/chat/completions"),
		AIAPIKey:       os.Getenv("AI_API_KEY"),
		AIModel:        getEnv("AI_MODEL", "anthropic/claude-sonnet-4"),
		AITimeout:      getDuration("AI_TIMEOUT", 30*time.Second),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		BadgerPath:     getEnv("BADGER_PATH", "./badger-data"),
	}

	if err := validatePort(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}
	if n < 1 || n > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}
