package llm

import "context"

// Backend is the interface all LLM backends must implement. A Backend
// performs exactly one call per Send; timeouts and retries belong to the
// Adapter wrapping it.
type Backend interface {
	// Send executes a single completion call and returns the raw text.
	// Failures are always returned as *Error.
	Send(ctx context.Context, req *Request) (string, error)

	// Name returns the backend name (e.g. "anthropic", "openai").
	Name() string

	// DefaultModel returns the model this backend is configured with.
	DefaultModel() string
}
