package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port           string
	AllowedOrigins []string
	RequestTimeout time.Duration

	// AI generation
	GeminiAPIKey string
	GeminiModel  string
	LLMTimeout   time.Duration

	// Supabase (saved jobs collection + auth)
	SupabaseURL string
	SupabaseKey string

	// Redis search cache (optional; empty addr disables it)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Local fallback for saved jobs
	FallbackPath string

	// Feed/search sizing
	FeedJobCount   int
	SearchJobCount int

	// Logging
	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		Port:           "8080",
		GeminiModel:    "gemini-2.5-flash",
		LLMTimeout:     2 * time.Minute,
		RequestTimeout: 15 * time.Second,
		FallbackPath:   "data/saved_jobs.json",
		FeedJobCount:   8,
		SearchJobCount: 6,
		LogLevel:       "info",
		RedisDB:        0,
	}

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	cfg.SupabaseURL = os.Getenv("SUPABASE_URL")
	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}

	cfg.SupabaseKey = os.Getenv("SUPABASE_KEY")
	if cfg.SupabaseKey == "" {
		return nil, fmt.Errorf("SUPABASE_KEY is required")
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.GeminiModel = model
	}

	if timeout := os.Getenv("LLM_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_TIMEOUT: %w", err)
		}
		cfg.LLMTimeout = d
	}

	if timeout := os.Getenv("REQUEST_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}

	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		db, err := strconv.Atoi(redisDB)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}

	if path := os.Getenv("FALLBACK_PATH"); path != "" {
		cfg.FallbackPath = path
	}

	if count := os.Getenv("FEED_JOB_COUNT"); count != "" {
		n, err := strconv.Atoi(count)
		if err != nil {
			return nil, fmt.Errorf("invalid FEED_JOB_COUNT: %w", err)
		}
		cfg.FeedJobCount = n
	}

	if count := os.Getenv("SEARCH_JOB_COUNT"); count != "" {
		n, err := strconv.Atoi(count)
		if err != nil {
			return nil, fmt.Errorf("invalid SEARCH_JOB_COUNT: %w", err)
		}
		cfg.SearchJobCount = n
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.FeedJobCount < 1 || c.FeedJobCount > 50 {
		return fmt.Errorf("feed job count must be between 1 and 50")
	}

	if c.SearchJobCount < 1 || c.SearchJobCount > 50 {
		return fmt.Errorf("search job count must be between 1 and 50")
	}

	if c.FallbackPath == "" {
		return fmt.Errorf("fallback path is empty")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}
