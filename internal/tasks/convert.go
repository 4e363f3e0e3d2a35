package tasks

import (
	"context"
	"encoding/json"
	"regexp"

	"github.com/rs/zerolog"

	"llmcomplete/internal/llm"
)

// Completer is the slice of the completion client the tasks need.
type Completer interface {
	Complete(ctx context.Context, req *llm.Request) (*llm.Result, error)
}

const converterSystemPrompt = "You are a TypeScript expert specializing in React component conversion."

const converterInstructions = `Convert the following React component code to TypeScript compatible code with proper props types and export statement.
Convert any button to an anchor tag with an href prop and make href a required prop.
Extract the user visible things like Text, Button, URL, Image, etc as props. Ensure that the component is compatible with TypeScript and follows best practices for type definitions.
Create Props in a separate file.

`

const converterMetadataFormat = `

Also give json for component name and component props name in the following format:

{
"name": "<component name>",
"props": "<component props name>",
"props_file_name": "<component props file name>"
}
`

// ComponentMetadata is the JSON block the model emits alongside the code.
type ComponentMetadata struct {
	Name          string `json:"name"`
	Props         string `json:"props"`
	PropsFileName string `json:"props_file_name"`
}

// Conversion is the result of one component conversion.
type Conversion struct {
	Component string
	Props     string
	Metadata  ComponentMetadata
}

// Converter rewrites React components as typed TypeScript.
type Converter struct {
	client Completer
	logger zerolog.Logger
}

// NewConverter creates a Converter over client.
func NewConverter(client Completer, logger zerolog.Logger) *Converter {
	return &Converter{client: client, logger: logger}
}

var metadataPattern = regexp.MustCompile(`\{[\s\S]*?"name"[\s\S]*?"props"[\s\S]*?"props_file_name"[\s\S]*?\}`)

// Convert turns source into a TypeScript component plus its props file and
// metadata. Fails with KindParsing when no TypeScript block can be extracted
// from the reply.
func (c *Converter) Convert(ctx context.Context, source string) (*Conversion, error) {
	res, err := c.client.Complete(ctx, &llm.Request{
		Prompt:       converterInstructions + source + converterMetadataFormat,
		SystemPrompt: converterSystemPrompt,
	})
	if err != nil {
		return nil, err
	}

	component := ExtractCode(res.Text, "tsx")
	if component == "" {
		component = ExtractCode(res.Text, "typescript")
	}
	if component == "" {
		component = ExtractCode(res.Text, "ts")
	}
	if component == "" {
		return nil, &llm.Error{
			Kind:    llm.KindParsing,
			Message: "reply contained no TypeScript code block",
		}
	}

	conv := &Conversion{
		Component: component,
		Props:     ExtractCode(res.Text, "ts"),
	}

	metadataStr := ExtractCode(res.Text, "json")
	if metadataStr == "" {
		metadataStr = metadataPattern.FindString(res.Text)
	}
	if metadataStr != "" {
		if err := json.Unmarshal([]byte(metadataStr), &conv.Metadata); err != nil {
			c.logger.Warn().Err(err).Msg("metadata block did not parse, continuing without it")
		}
	}

	c.logger.Info().Str("component", conv.Metadata.Name).Msg("converted component to TypeScript")
	return conv, nil
}
