// Package structured turns free-form completions into JSON values that
// conform to a caller-supplied JSON schema, reprompting with the specific
// violation when the model gets it wrong.
package structured

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"llmcomplete/internal/llm"
)

// Completer is the slice of the orchestrator the resolver needs.
type Completer interface {
	Complete(ctx context.Context, req *llm.Request) (*llm.Result, error)
}

const (
	defaultMaxAttempts = 3

	jsonInstruction = "You must respond with valid JSON only, no other text. " +
		"Ensure the response can be parsed as JSON."
)

// Resolver resolves structured-output requests against a Completer.
type Resolver struct {
	client      Completer
	maxAttempts int
	logger      zerolog.Logger
}

// NewResolver creates a Resolver with the default corrective-attempt bound.
func NewResolver(client Completer, logger zerolog.Logger) *Resolver {
	return &Resolver{client: client, maxAttempts: defaultMaxAttempts, logger: logger}
}

// Resolve asks for a completion and parses the reply as JSON, validating it
// against req.Schema when one is supplied. On a parse or validation failure
// it re-invokes with a corrective instruction describing the violation, up to
// the attempt bound; exhaustion surfaces KindParsing with the last raw text
// and diagnostics. The returned result carries the parsed value and the total
// backend attempts consumed across all corrective rounds.
func (r *Resolver) Resolve(ctx context.Context, req *llm.Request) (*llm.Result, error) {
	schema, err := compileSchema(req.Schema)
	if err != nil {
		return nil, &llm.Error{
			Kind:    llm.KindInvalidRequest,
			Message: fmt.Sprintf("schema does not compile: %v", err),
			Err:     err,
		}
	}

	base := formatPrompt(req)
	prompt := base
	var lastText, lastDiag string
	total := 0

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		run := *req
		run.Prompt = prompt
		run.SystemPrompt = joinSystemPrompt(req.SystemPrompt)

		res, err := r.client.Complete(ctx, &run)
		if err != nil {
			return nil, err
		}
		total += res.Attempts
		lastText = res.Text

		value, diag := check(res.Text, schema)
		if diag == "" {
			out := *res
			out.Value = value
			out.Attempts = total
			return &out, nil
		}
		lastDiag = diag

		r.logger.Warn().
			Int("attempt", attempt).
			Str("diagnostic", diag).
			Msg("structured output rejected, reprompting")

		prompt = base +
			"\n\nYour previous reply was rejected: " + diag +
			"\nReturn only the corrected JSON."
	}

	return nil, &llm.Error{
		Kind: llm.KindParsing,
		Message: fmt.Sprintf("no conforming JSON after %d attempts: %s\nlast response: %s",
			r.maxAttempts, lastDiag, lastText),
		Attempts: total,
	}
}

// check parses text as JSON and validates it against schema (which may be
// nil). It returns the parsed value and an empty diagnostic on success, or a
// diagnostic describing the parse or validation failure.
func check(text string, schema *jsonschema.Schema) (any, string) {
	value, err := decodeJSON(text)
	if err != nil {
		return nil, "response is not valid JSON: " + err.Error()
	}
	if schema != nil {
		if verr := schema.Validate(value); verr != nil {
			return nil, "response does not conform to the schema: " + validationDiag(verr)
		}
	}
	return value, ""
}

// decodeJSON parses the reply, preferring a ```json fenced block when the
// model wrapped its answer in markdown.
func decodeJSON(text string) (any, error) {
	raw := text
	if block := extractJSONBlock(text); block != "" {
		raw = block
	}
	value, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil && raw != text {
		value, err = jsonschema.UnmarshalJSON(strings.NewReader(text))
	}
	return value, err
}

func extractJSONBlock(text string) string {
	const marker = "```json"
	if !strings.Contains(text, marker) {
		return ""
	}
	after := strings.SplitN(text, marker, 2)[1]
	return strings.TrimSpace(strings.SplitN(after, "```", 2)[0])
}

func compileSchema(raw json.RawMessage) (*jsonschema.Schema, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("request-schema.json", doc); err != nil {
		return nil, err
	}
	return c.Compile("request-schema.json")
}

// validationDiag flattens a validation error into the message fed back to
// the model. Missing required properties and numeric bound violations come
// out as distinct causes.
func validationDiag(err error) string {
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return err.Error()
}

func formatPrompt(req *llm.Request) string {
	if len(req.Schema) == 0 {
		return req.Prompt
	}
	return fmt.Sprintf("%s\n\nThe response must be a JSON document conforming to this JSON schema:\n%s",
		req.Prompt, string(req.Schema))
}

func joinSystemPrompt(system string) string {
	if system == "" {
		return jsonInstruction
	}
	return system + "\n\n" + jsonInstruction
}
