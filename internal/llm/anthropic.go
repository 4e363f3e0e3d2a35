package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicBackend implements Backend using the Anthropic API.
type AnthropicBackend struct {
	client       anthropic.Client
	defaultModel string
}

// AnthropicConfig holds construction parameters for the Anthropic backend.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// NewAnthropicBackend creates a new Anthropic backend.
func NewAnthropicBackend(cfg AnthropicConfig) *AnthropicBackend {
	model := cfg.Model
	if model == "" {
		model = "claude-sonnet-4-5-20250514"
	}
	return &AnthropicBackend{
		client:       anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		defaultModel: model,
	}
}

func (b *AnthropicBackend) Name() string         { return "anthropic" }
func (b *AnthropicBackend) DefaultModel() string { return b.defaultModel }

func (b *AnthropicBackend) Send(ctx context.Context, req *Request) (string, error) {
	params := anthropic.MessageNewParams{
		Model: anthropic.Model(b.defaultModel),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
		MaxTokens: int64(req.MaxTokens),
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: req.SystemPrompt},
		}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}

	resp, err := b.client.Messages.New(ctx, params)
	if err != nil {
		return "", classifyAnthropicError(err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(tb.Text)
		}
	}
	return text.String(), nil
}

func classifyAnthropicError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &Error{Kind: KindTimeout, Provider: "anthropic", Message: "request aborted", Err: err}
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	e := &Error{Kind: KindCompletion, Provider: "anthropic", Message: msg, Err: err}

	switch {
	case strings.Contains(lower, "401") || strings.Contains(lower, "authentication"):
		e.Kind = KindAuthentication
	case strings.Contains(lower, "429") || strings.Contains(lower, "rate_limit"):
		e.Kind = KindRateLimit
	case strings.Contains(lower, "404") || strings.Contains(lower, "not_found") || strings.Contains(lower, "overloaded"):
		e.Kind = KindModelUnavailable
	case strings.Contains(lower, "400") || strings.Contains(lower, "invalid_request"):
		e.Kind = KindInvalidRequest
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline"):
		e.Kind = KindTimeout
	}
	return e
}
