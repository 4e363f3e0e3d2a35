package config

import "time"

// ProviderConfig holds the call policy for one backend namespace. Values are
// read once at process start and never mutated afterwards, so concurrent
// reads need no synchronization.
type ProviderConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxRetries  int
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

// Config is the process-wide configuration: the primary and fallback
// provider namespaces are kept separate.
type Config struct {
	Primary  ProviderConfig
	Fallback ProviderConfig
}
