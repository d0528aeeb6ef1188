package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPrimaryURL  = "https://ozgur1-sentiment-analyzer.hf.space/api/predict"
	defaultFallbackURL = "https://ozgur1-sentiment-analyzer.hf.space/run/predict"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	LogLevel    string
	LogFormat   string

	SentimentPrimaryURL  string
	SentimentFallbackURL string
	// SentimentTimeout bounds each individual classifier HTTP attempt.
	SentimentTimeout time.Duration
	// SentimentRetryBackoff is the fixed wait before the single primary retry.
	SentimentRetryBackoff time.Duration
}

func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:               getEnv("APP_ENV", "development"),
		Port:                 getEnv("PORT", "8080"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "text"),
		SentimentPrimaryURL:  getEnv("SENTIMENT_PRIMARY_URL", defaultPrimaryURL),
		SentimentFallbackURL: getEnv("SENTIMENT_FALLBACK_URL", defaultFallbackURL),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.SentimentPrimaryURL == "" {
		return nil, fmt.Errorf("SENTIMENT_PRIMARY_URL cannot be empty")
	}
	if cfg.SentimentFallbackURL == "" {
		return nil, fmt.Errorf("SENTIMENT_FALLBACK_URL cannot be empty")
	}

	var err error
	if cfg.SentimentTimeout, err = getDuration("SENTIMENT_TIMEOUT", 25*time.Second); err != nil {
		return nil, err
	}
	if cfg.SentimentRetryBackoff, err = getDuration("SENTIMENT_RETRY_BACKOFF", 2500*time.Millisecond); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, d)
	}
	return d, nil
}
