package api

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// DefaultBaseURL is used when CANDEX_API_URL is unset. Matches the local
// development address of the backend.
const DefaultBaseURL = "http://localhost:5000"

// Config holds backend client configuration.
type Config struct {
	// BaseURL is the backend root, without a trailing slash.
	BaseURL string

	// Timeout is the per-request deadline, retries included.
	Timeout time.Duration

	Retry RetryConfig
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: 15 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("CANDEX_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("CANDEX_API_TIMEOUT_SECS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}

// Validate checks the configuration for obvious mistakes.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("CANDEX_API_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("CANDEX_API_URL: unsupported scheme %q", u.Scheme)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}
