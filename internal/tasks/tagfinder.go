package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"llmcomplete/internal/llm"
)

// Resolver is the slice of the structured resolver the tag finder needs.
type Resolver interface {
	Resolve(ctx context.Context, req *llm.Request) (*llm.Result, error)
}

const tagFinderSystemPrompt = "You are a UI/UX expert specializing in landing page design."

// tagListSchema constrains the reply to an array of strings.
var tagListSchema = json.RawMessage(`{"type":"array","items":{"type":"string"}}`)

// defaultComponents pads out a selection when the model returns too few.
var defaultComponents = []string{"Hero", "Features", "Testimonials", "CTA", "Footer"}

// TagFinder selects landing-page components from a candidate list.
type TagFinder struct {
	resolver Resolver
	logger   zerolog.Logger
}

// NewTagFinder creates a TagFinder over resolver.
func NewTagFinder(resolver Resolver, logger zerolog.Logger) *TagFinder {
	return &TagFinder{resolver: resolver, logger: logger}
}

// Find asks the model to pick at least count components that work together
// for a landing page. Short selections are padded with defaults so callers
// always get count entries.
func (f *TagFinder) Find(ctx context.Context, components []string, count int) ([]string, error) {
	available, err := json.Marshal(components)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(
		"As a UI/UX expert, select at least %d components in sequence for a landing page from the following list.\n"+
			"Choose components that work well together for a modern, effective landing page.\n"+
			"Format your response as a JSON array of strings containing only component names.\n\n"+
			"Available components: %s\n\n"+
			"Remember to:\n"+
			"1. Select at least %d components\n"+
			"2. Choose components that logically work together\n"+
			"3. Return only a valid JSON array of component names",
		count, available, count)

	res, err := f.resolver.Resolve(ctx, &llm.Request{
		Prompt:       prompt,
		SystemPrompt: tagFinderSystemPrompt,
		Schema:       tagListSchema,
	})
	if err != nil {
		return nil, err
	}

	items, ok := res.Value.([]any)
	if !ok {
		return nil, &llm.Error{
			Kind:    llm.KindParsing,
			Message: fmt.Sprintf("expected a JSON array of component names, got %T", res.Value),
		}
	}

	selected := make([]string, 0, len(items))
	for _, item := range items {
		selected = append(selected, fmt.Sprint(item))
	}

	if len(selected) < count {
		f.logger.Warn().
			Int("got", len(selected)).
			Int("want", count).
			Msg("selection came up short, padding with defaults")
		for _, c := range defaultComponents {
			if len(selected) >= count {
				break
			}
			if !containsString(selected, c) {
				selected = append(selected, c)
			}
		}
	}

	return selected, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
