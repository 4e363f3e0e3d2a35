package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Client orchestrates one logical completion: try the primary adapter, fail
// over to the fallback for eligible errors, never mix output from the two.
// A Client is safe for concurrent use; requests share nothing mutable.
type Client struct {
	primary  *Adapter
	fallback *Adapter // nil when no fallback is configured
	logger   zerolog.Logger
}

// NewClient creates a Client over the given adapters. fallback may be nil.
func NewClient(primary, fallback *Adapter, logger zerolog.Logger) *Client {
	return &Client{primary: primary, fallback: fallback, logger: logger}
}

// Complete runs req to completion. The result records which backend answered
// and how many backend calls were consumed across both adapters. A terminal
// failure surfaces the last concrete error kind, never a generic wrapper.
func (c *Client) Complete(ctx context.Context, req *Request) (*Result, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	text, attempts, err := c.primary.Do(ctx, req)
	if err == nil {
		return &Result{Text: text, Provider: c.primary.Name(), Attempts: attempts}, nil
	}

	perr := asError(err, c.primary.Name())
	if decisionFor(perr.Kind) == propagate || c.fallback == nil {
		return nil, perr
	}

	c.logger.Warn().
		Str("provider", c.primary.Name()).
		Str("kind", perr.Kind.String()).
		Int("attempts", attempts).
		Msg("primary exhausted, failing over")

	text, fattempts, ferr := c.fallback.Do(ctx, req)
	total := attempts + fattempts
	if ferr != nil {
		fe := asError(ferr, c.fallback.Name())
		fe.Attempts = total
		return nil, fe
	}
	return &Result{Text: text, Provider: c.fallback.Name(), Attempts: total}, nil
}

func validateRequest(req *Request) error {
	switch {
	case req == nil || strings.TrimSpace(req.Prompt) == "":
		return &Error{Kind: KindInvalidRequest, Message: "prompt must not be empty"}
	case req.Temperature < 0 || req.Temperature > 2:
		return &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf("temperature %g outside [0, 2]", req.Temperature)}
	case req.MaxTokens < 0:
		return &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf("max tokens %d must be positive", req.MaxTokens)}
	}
	return nil
}
