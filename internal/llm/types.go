package llm

import (
	"encoding/json"
	"time"
)

// Request is one completion request. It is never mutated after construction;
// the adapter copies it before applying configured defaults.
type Request struct {
	// Prompt is the user prompt. Required.
	Prompt string
	// SystemPrompt carries optional system instructions.
	SystemPrompt string
	// MaxTokens bounds the response length. Zero means the configured default.
	MaxTokens int
	// Temperature controls randomness, valid range [0, 2]. Zero means the
	// configured default.
	Temperature float64
	// Schema is an optional JSON schema the structured resolver validates
	// the response against. Backends ignore it.
	Schema json.RawMessage
}

// Result is the outcome of one logical completion request. Immutable once
// returned.
type Result struct {
	// Text is the raw completion text.
	Text string
	// Value is the parsed, schema-validated value when a schema was supplied.
	Value any
	// Provider names the backend that produced the answer.
	Provider string
	// Attempts is the total number of backend calls consumed.
	Attempts int
}

// AttemptRecord captures one call to one backend. It feeds the per-attempt
// log entry and is not exposed to callers.
type AttemptRecord struct {
	Provider string
	Attempt  int
	OK       bool
	Kind     ErrorKind
	Elapsed  time.Duration
}
