package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultMaxRetries  = 3
	defaultTimeout     = 30 * time.Second
	defaultMaxTokens   = 4096
	defaultTemperature = 0.7

	defaultPrimaryModel  = "claude-sonnet-4-5-20250514"
	defaultFallbackModel = "gpt-4o-mini"
)

// FromEnv reads configuration from the environment into an immutable Config.
// Call godotenv.Load beforehand if a .env file should be honored. Malformed
// numeric values fail here; a missing primary API key is reported by the
// client factory so the error carries the right classification.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Primary: ProviderConfig{
			APIKey: os.Getenv("ANTHROPIC_API_KEY"),
			Model:  envString("ANTHROPIC_MODEL", defaultPrimaryModel),
		},
		Fallback: ProviderConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   envString("OPENAI_MODEL", defaultFallbackModel),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
		},
	}

	var err error
	if cfg.Primary.MaxRetries, err = envInt("ANTHROPIC_MAX_RETRIES", defaultMaxRetries); err != nil {
		return nil, err
	}
	if cfg.Primary.Timeout, err = envSeconds("ANTHROPIC_TIMEOUT", defaultTimeout); err != nil {
		return nil, err
	}
	if cfg.Fallback.MaxRetries, err = envInt("OPENAI_MAX_RETRIES", defaultMaxRetries); err != nil {
		return nil, err
	}
	if cfg.Fallback.Timeout, err = envSeconds("OPENAI_TIMEOUT", defaultTimeout); err != nil {
		return nil, err
	}

	maxTokens, err := envInt("MAX_TOKENS", defaultMaxTokens)
	if err != nil {
		return nil, err
	}
	temperature, err := envFloat("TEMPERATURE", defaultTemperature)
	if err != nil {
		return nil, err
	}
	cfg.Primary.MaxTokens = maxTokens
	cfg.Fallback.MaxTokens = maxTokens
	cfg.Primary.Temperature = temperature
	cfg.Fallback.Temperature = temperature

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: expected integer, got %q", key, v)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: expected number, got %q", key, v)
	}
	return f, nil
}

// envSeconds reads a whole number of seconds, matching the original
// environment contract (TIMEOUT=30 means 30s).
func envSeconds(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: expected seconds as integer, got %q", key, v)
	}
	return time.Duration(n) * time.Second, nil
}
