package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"llmcomplete/internal/llm"
)

const generatorSystemPrompt = "You are a data generation expert specializing in creating realistic " +
	"JSON data that conforms to specific schemas."

// generatedListSchema requires the reply to be a list of objects.
var generatedListSchema = json.RawMessage(`{"type":"array","items":{"type":"object"}}`)

// Generator produces example JSON data conforming to caller schemas.
type Generator struct {
	resolver Resolver
	logger   zerolog.Logger
}

// NewGenerator creates a Generator over resolver.
func NewGenerator(resolver Resolver, logger zerolog.Logger) *Generator {
	return &Generator{resolver: resolver, logger: logger}
}

// Generate asks the model for count examples conforming to the given schemas,
// then normalizes image fields to Unsplash URLs and icon fields to
// react-icons references.
func (g *Generator) Generate(ctx context.Context, schemas []json.RawMessage, instructions string, count int) ([]map[string]any, error) {
	schemaDocs := make([]json.RawMessage, len(schemas))
	copy(schemaDocs, schemas)
	schemasJSON, err := json.MarshalIndent(schemaDocs, "", "  ")
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(
		"Generate %d examples of JSON data that conform to the following schema(s):\n\n%s\n\n"+
			"Additional requirements: %s\n\n"+
			"Fill image assets with Unsplash stock images you know exist.\n"+
			"Use icons for svgs or logos if the component requires them. Return icons as a JSON dict with "+
			`fields "package" (react-icons package name) and "name" (icon name), e.g. `+
			`{"package": "react-icons/fa", "name": "FaUser"}. Only use known icons from react-icons.`+"\n\n"+
			"Return ONLY valid JSON data that matches the schema(s) provided. "+
			"Format as a list of JSON objects, even if there is only one example.",
		count, schemasJSON, instructions)

	res, err := g.resolver.Resolve(ctx, &llm.Request{
		Prompt:       prompt,
		SystemPrompt: generatorSystemPrompt,
		Schema:       generatedListSchema,
	})
	if err != nil {
		return nil, err
	}

	items, ok := res.Value.([]any)
	if !ok {
		return nil, &llm.Error{
			Kind:    llm.KindParsing,
			Message: fmt.Sprintf("expected a JSON array of objects, got %T", res.Value),
		}
	}

	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, normalizeItem(obj).(map[string]any))
	}

	g.logger.Info().Int("examples", len(out)).Msg("generated schema-conforming data")
	return out, nil
}

var imageKeys = []string{"image", "img", "photo", "picture", "thumbnail"}
var iconKeys = []string{"icon", "svg", "logo"}

// normalizeItem walks the generated value and rewrites image placeholders to
// Unsplash URLs and bare icon names to react-icons references.
func normalizeItem(item any) any {
	switch v := item.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			value = normalizeItem(value)
			if s, ok := value.(string); ok {
				switch {
				case keyMatches(key, imageKeys) && !strings.HasPrefix(s, "http"):
					value = unsplashURL(s, key)
				case keyMatches(key, iconKeys) && !strings.HasPrefix(s, "http"):
					value = formatIcon(s)
				}
			}
			out[key] = value
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, sub := range v {
			out[i] = normalizeItem(sub)
		}
		return out
	default:
		return item
	}
}

func keyMatches(key string, needles []string) bool {
	lower := strings.ToLower(key)
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}

func unsplashURL(value, context string) string {
	topic := strings.ToLower(strings.ReplaceAll(value, " ", "-"))
	switch value {
	case "image", "placeholder", "photo":
		if context != "" {
			topic = strings.ToLower(context)
		}
	}
	return "https://source.unsplash.com/random?" + topic
}

// iconPackages maps react-icons name prefixes to their import packages.
var iconPackages = map[string]string{
	"Fa": "react-icons/fa",
	"Md": "react-icons/md",
	"Io": "react-icons/io",
	"Bi": "react-icons/bi",
	"Fi": "react-icons/fi",
}

func formatIcon(value string) map[string]any {
	name := strings.TrimSpace(value)
	if name == "" || name[0] < 'A' || name[0] > 'Z' {
		name = "Fa" + capitalize(name)
	}

	pkg := "react-icons/fa"
	for prefix, p := range iconPackages {
		if strings.HasPrefix(name, prefix) {
			pkg = p
			break
		}
	}
	return map[string]any{"package": pkg, "name": name}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
