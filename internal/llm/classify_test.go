package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"llmcomplete/internal/config"
)

func TestClassifyAnthropicError(t *testing.T) {
	tests := []struct {
		msg  string
		want ErrorKind
	}{
		{"401 Unauthorized: authentication_error", KindAuthentication},
		{"429 Too Many Requests: rate_limit_error", KindRateLimit},
		{"404 Not Found: model: claude-nope", KindModelUnavailable},
		{"529 overloaded_error: Overloaded", KindModelUnavailable},
		{"400 Bad Request: invalid_request_error", KindInvalidRequest},
		{"post \"...\": context deadline exceeded (timeout)", KindTimeout},
		{"500 Internal Server Error", KindCompletion},
	}
	for _, tt := range tests {
		got := classifyAnthropicError(errors.New(tt.msg))
		if got.Kind != tt.want {
			t.Errorf("%q: got %s, want %s", tt.msg, got.Kind, tt.want)
		}
		if got.Provider != "anthropic" {
			t.Errorf("%q: provider %q", tt.msg, got.Provider)
		}
	}

	if got := classifyAnthropicError(context.DeadlineExceeded); got.Kind != KindTimeout {
		t.Errorf("deadline: got %s", got.Kind)
	}
	if got := classifyAnthropicError(context.Canceled); got.Kind != KindTimeout {
		t.Errorf("canceled: got %s", got.Kind)
	}
}

func TestClassifyOpenAIError(t *testing.T) {
	tests := []struct {
		msg  string
		want ErrorKind
	}{
		{"401 Unauthorized", KindAuthentication},
		{"403 forbidden", KindAuthentication},
		{"429 rate limit reached", KindRateLimit},
		{"404 model_not_found", KindModelUnavailable},
		{"400 invalid value for temperature", KindInvalidRequest},
		{"request timeout", KindTimeout},
		{"connection refused", KindCompletion},
	}
	for _, tt := range tests {
		got := classifyOpenAIError(errors.New(tt.msg))
		if got.Kind != tt.want {
			t.Errorf("%q: got %s, want %s", tt.msg, got.Kind, tt.want)
		}
	}
}

func TestNewClientFromConfig(t *testing.T) {
	valid := config.ProviderConfig{
		APIKey:     "key",
		MaxRetries: 3,
		Timeout:    30 * time.Second,
	}

	t.Run("missing primary key", func(t *testing.T) {
		_, err := NewClientFromConfig(&config.Config{Fallback: valid}, zerolog.Nop())
		if KindOf(err) != KindConfiguration {
			t.Fatalf("got %s, want configuration", KindOf(err))
		}
	})

	t.Run("bad timeout", func(t *testing.T) {
		bad := valid
		bad.Timeout = 0
		_, err := NewClientFromConfig(&config.Config{Primary: bad}, zerolog.Nop())
		if KindOf(err) != KindConfiguration {
			t.Fatalf("got %s, want configuration", KindOf(err))
		}
	})

	t.Run("negative retries", func(t *testing.T) {
		bad := valid
		bad.MaxRetries = -1
		_, err := NewClientFromConfig(&config.Config{Primary: bad}, zerolog.Nop())
		if KindOf(err) != KindConfiguration {
			t.Fatalf("got %s, want configuration", KindOf(err))
		}
	})

	t.Run("fallback optional", func(t *testing.T) {
		c, err := NewClientFromConfig(&config.Config{Primary: valid}, zerolog.Nop())
		if err != nil {
			t.Fatal(err)
		}
		if c.fallback != nil {
			t.Fatal("fallback adapter created without an API key")
		}
	})

	t.Run("both providers", func(t *testing.T) {
		c, err := NewClientFromConfig(&config.Config{Primary: valid, Fallback: valid}, zerolog.Nop())
		if err != nil {
			t.Fatal(err)
		}
		if c.primary.Name() != "anthropic" || c.fallback.Name() != "openai" {
			t.Fatalf("adapters: primary=%q fallback=%q", c.primary.Name(), c.fallback.Name())
		}
	})
}
