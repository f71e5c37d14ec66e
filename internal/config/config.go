package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            int
	Env             string
	DBUrl           string
	YoutubeAPIKey   string
	AllowedOrigins  []string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// Load reads configuration from the environment, optionally seeded from a
// .env file. The YouTube API key has no default; startup fails without it.
func Load() (*Config, error) {
	// A missing .env file is fine, the environment may be set directly.
	_ = godotenv.Load()

	apiKey := os.Getenv("YOUTUBE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("YOUTUBE_API_KEY environment variable is required")
	}

	cfg := &Config{
		Port:            getIntParam("PORT", 5000),
		Env:             getParam("ENV", "development"),
		DBUrl:           os.Getenv("DB_URL"),
		YoutubeAPIKey:   apiKey,
		AllowedOrigins:  strings.Split(getParam("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		RateLimitMax:    getIntParam("RATE_LIMIT_MAX", 100),
		RateLimitWindow: time.Duration(getIntParam("RATE_LIMIT_WINDOW_MS", 900000)) * time.Millisecond,
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getParam(name, def string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return def
}

func getIntParam(name string, def int) int {
	value := os.Getenv(name)
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}
