package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "ANTHROPIC_MAX_RETRIES", "ANTHROPIC_TIMEOUT",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_MAX_RETRIES", "OPENAI_TIMEOUT", "OPENAI_BASE_URL",
		"MAX_TOKENS", "TEMPERATURE",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Primary.MaxRetries != 3 {
		t.Errorf("max retries: got %d, want 3", cfg.Primary.MaxRetries)
	}
	if cfg.Primary.Timeout != 30*time.Second {
		t.Errorf("timeout: got %s, want 30s", cfg.Primary.Timeout)
	}
	if cfg.Primary.MaxTokens != 4096 {
		t.Errorf("max tokens: got %d, want 4096", cfg.Primary.MaxTokens)
	}
	if cfg.Primary.Temperature != 0.7 {
		t.Errorf("temperature: got %g, want 0.7", cfg.Primary.Temperature)
	}
	if cfg.Fallback.Model != "gpt-4o-mini" {
		t.Errorf("fallback model: got %q", cfg.Fallback.Model)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "primary-key")
	t.Setenv("ANTHROPIC_MODEL", "claude-test")
	t.Setenv("ANTHROPIC_MAX_RETRIES", "5")
	t.Setenv("ANTHROPIC_TIMEOUT", "10")
	t.Setenv("OPENAI_API_KEY", "fallback-key")
	t.Setenv("MAX_TOKENS", "512")
	t.Setenv("TEMPERATURE", "0.1")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Primary.APIKey != "primary-key" || cfg.Primary.Model != "claude-test" {
		t.Fatalf("primary: %+v", cfg.Primary)
	}
	if cfg.Primary.MaxRetries != 5 || cfg.Primary.Timeout != 10*time.Second {
		t.Fatalf("primary policy: %+v", cfg.Primary)
	}
	if cfg.Fallback.APIKey != "fallback-key" {
		t.Fatalf("fallback: %+v", cfg.Fallback)
	}
	if cfg.Primary.MaxTokens != 512 || cfg.Fallback.MaxTokens != 512 {
		t.Fatal("shared MAX_TOKENS not applied to both namespaces")
	}
	if cfg.Primary.Temperature != 0.1 || cfg.Fallback.Temperature != 0.1 {
		t.Fatal("shared TEMPERATURE not applied to both namespaces")
	}
}

func TestFromEnvRejectsMalformedNumbers(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"ANTHROPIC_MAX_RETRIES", "lots"},
		{"ANTHROPIC_TIMEOUT", "30s"},
		{"MAX_TOKENS", "4k"},
		{"TEMPERATURE", "warm"},
	}
	for _, tt := range tests {
		clearEnv(t)
		t.Setenv(tt.key, tt.value)
		if _, err := FromEnv(); err == nil {
			t.Errorf("%s=%q: expected error", tt.key, tt.value)
		}
	}
}
