package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Collector modes accepted by COLLECTOR_MODE.
const (
	ModePublic = "public"
	ModeAPI    = "api"
	ModeMock   = "mock"
)

// Config holds all application configuration.
type Config struct {
	// Collector
	Mode        string
	UserAgent   string
	BaseURL     string
	LinkBaseURL string

	// Reddit OAuth (api mode only)
	RedditClientID     string
	RedditClientSecret string
	RedditUsername     string
	RedditPassword     string

	// Fetching
	FetchLimit       int
	SummarySentences int
	RequestTimeout   time.Duration
	RequestInterval  time.Duration // 0 disables pacing

	// Catalogue file (CSV or YAML); empty means the built-in list
	ForumsFile string

	// Renderer executable
	ChafaPath string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Mode:               getEnv("COLLECTOR_MODE", ModePublic),
		UserAgent:          getEnv("REDDIT_USER_AGENT", "IntextSumyViewer/1.0"),
		BaseURL:            strings.TrimRight(getEnv("REDDIT_BASE_URL", "https://www.reddit.com"), "/"),
		LinkBaseURL:        strings.TrimRight(getEnv("LINK_BASE_URL", "https://reddit.com"), "/"),
		RedditClientID:     getEnv("REDDIT_CLIENT_ID", ""),
		RedditClientSecret: getEnv("REDDIT_CLIENT_SECRET", ""),
		RedditUsername:     getEnv("REDDIT_USERNAME", ""),
		RedditPassword:     getEnv("REDDIT_PASSWORD", ""),
		ForumsFile:         getEnv("FORUMS_FILE", ""),
		ChafaPath:          getEnv("CHAFA_PATH", "chafa"),
		LogLevel:           getEnv("LOG_LEVEL", "warn"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
	}

	var err error
	if cfg.FetchLimit, err = strconv.Atoi(getEnv("FETCH_LIMIT", "100")); err != nil {
		return nil, fmt.Errorf("invalid FETCH_LIMIT: %w", err)
	}
	if cfg.SummarySentences, err = strconv.Atoi(getEnv("SUMMARY_SENTENCES", "5")); err != nil {
		return nil, fmt.Errorf("invalid SUMMARY_SENTENCES: %w", err)
	}
	if cfg.RequestTimeout, err = time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}
	if cfg.RequestInterval, err = time.ParseDuration(getEnv("REQUEST_INTERVAL", "0s")); err != nil {
		return nil, fmt.Errorf("invalid REQUEST_INTERVAL: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable for the selected mode.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModePublic, ModeMock:
	case ModeAPI:
		if c.RedditClientID == "" || c.RedditClientSecret == "" {
			return fmt.Errorf("REDDIT_CLIENT_ID and REDDIT_CLIENT_SECRET are required for api mode")
		}
		if c.RedditUsername == "" || c.RedditPassword == "" {
			return fmt.Errorf("REDDIT_USERNAME and REDDIT_PASSWORD are required for api mode")
		}
	default:
		return fmt.Errorf("unknown COLLECTOR_MODE: %s (use 'public', 'api', or 'mock')", c.Mode)
	}
	if c.UserAgent == "" {
		return fmt.Errorf("REDDIT_USER_AGENT is required")
	}
	if c.FetchLimit <= 0 || c.FetchLimit > 100 {
		return fmt.Errorf("FETCH_LIMIT must be between 1 and 100, got %d", c.FetchLimit)
	}
	if c.SummarySentences <= 0 {
		return fmt.Errorf("SUMMARY_SENTENCES must be positive, got %d", c.SummarySentences)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	if c.RequestInterval < 0 {
		return fmt.Errorf("REQUEST_INTERVAL must not be negative")
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level, defaulting to warn.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
