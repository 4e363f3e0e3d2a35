package llm

import (
	"fmt"

	"github.com/rs/zerolog"

	"llmcomplete/internal/config"
)

// NewClientFromConfig wires the primary (Anthropic) and fallback (OpenAI)
// adapters from configuration. Configuration defects fail here, before any
// request is accepted.
func NewClientFromConfig(cfg *config.Config, logger zerolog.Logger) (*Client, error) {
	if cfg.Primary.APIKey == "" {
		return nil, &Error{Kind: KindConfiguration, Message: "primary provider API key is not set"}
	}
	if err := validateProviderConfig("primary", cfg.Primary); err != nil {
		return nil, err
	}

	primary := NewAdapter(NewAnthropicBackend(AnthropicConfig{
		APIKey: cfg.Primary.APIKey,
		Model:  cfg.Primary.Model,
	}), cfg.Primary, logger)

	var fallback *Adapter
	if cfg.Fallback.APIKey != "" {
		if err := validateProviderConfig("fallback", cfg.Fallback); err != nil {
			return nil, err
		}
		fallback = NewAdapter(NewOpenAIBackend(OpenAIConfig{
			APIKey:  cfg.Fallback.APIKey,
			BaseURL: cfg.Fallback.BaseURL,
			Model:   cfg.Fallback.Model,
		}), cfg.Fallback, logger)
	}

	return NewClient(primary, fallback, logger), nil
}

func validateProviderConfig(name string, cfg config.ProviderConfig) error {
	if cfg.MaxRetries < 0 {
		return &Error{Kind: KindConfiguration, Message: fmt.Sprintf("%s provider: max retries %d must be >= 0", name, cfg.MaxRetries)}
	}
	if cfg.Timeout <= 0 {
		return &Error{Kind: KindConfiguration, Message: fmt.Sprintf("%s provider: timeout %s must be > 0", name, cfg.Timeout)}
	}
	return nil
}
