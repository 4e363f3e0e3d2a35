package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIBackend implements Backend using the OpenAI API.
// Also works with compatible APIs (OpenRouter, vLLM) via BaseURL.
type OpenAIBackend struct {
	client       openai.Client
	defaultModel string
}

// OpenAIConfig holds construction parameters for the OpenAI backend.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewOpenAIBackend creates a new OpenAI backend.
func NewOpenAIBackend(cfg OpenAIConfig) *OpenAIBackend {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIBackend{
		client:       openai.NewClient(opts...),
		defaultModel: model,
	}
}

func (b *OpenAIBackend) Name() string         { return "openai" }
func (b *OpenAIBackend) DefaultModel() string { return b.defaultModel }

func (b *OpenAIBackend) Send(ctx context.Context, req *Request) (string, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    b.defaultModel,
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	resp, err := b.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &Error{Kind: KindCompletion, Provider: "openai", Message: "response contained no choices"}
	}
	return resp.Choices[0].Message.Content, nil
}

func classifyOpenAIError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &Error{Kind: KindTimeout, Provider: "openai", Message: "request aborted", Err: err}
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	e := &Error{Kind: KindCompletion, Provider: "openai", Message: msg, Err: err}

	switch {
	case strings.Contains(lower, "401") || strings.Contains(lower, "403") || strings.Contains(lower, "unauthorized"):
		e.Kind = KindAuthentication
	case strings.Contains(lower, "429") || strings.Contains(lower, "rate limit"):
		e.Kind = KindRateLimit
	case strings.Contains(lower, "404") || strings.Contains(lower, "model_not_found") || strings.Contains(lower, "overloaded"):
		e.Kind = KindModelUnavailable
	case strings.Contains(lower, "400") || strings.Contains(lower, "invalid"):
		e.Kind = KindInvalidRequest
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline"):
		e.Kind = KindTimeout
	}
	return e
}
