package tasks

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"llmcomplete/internal/llm"
)

// fakeCompleter returns one canned reply and records the request.
type fakeCompleter struct {
	reply   string
	err     error
	lastReq *llm.Request
}

func (f *fakeCompleter) Complete(_ context.Context, req *llm.Request) (*llm.Result, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Result{Text: f.reply, Provider: "stub", Attempts: 1}, nil
}

func TestConvertParsesAllBlocks(t *testing.T) {
	c := NewConverter(&fakeCompleter{reply: sampleReply}, zerolog.Nop())

	conv, err := c.Convert(context.Background(), "const Hero = () => <button>Go</button>;")
	if err != nil {
		t.Fatal(err)
	}
	if conv.Component == "" {
		t.Fatal("component code empty")
	}
	if conv.Props == "" {
		t.Fatal("props code empty")
	}
	if conv.Metadata.Name != "Hero" || conv.Metadata.Props != "HeroProps" {
		t.Fatalf("metadata: %+v", conv.Metadata)
	}
	if conv.Metadata.PropsFileName != "hero.props.ts" {
		t.Fatalf("props file name: %q", conv.Metadata.PropsFileName)
	}
}

func TestConvertMetadataWithoutFence(t *testing.T) {
	reply := "```tsx\nexport const X = () => null;\n```\n" +
		`{"name": "X", "props": "XProps", "props_file_name": "x.props.ts"}`
	c := NewConverter(&fakeCompleter{reply: reply}, zerolog.Nop())

	conv, err := c.Convert(context.Background(), "src")
	if err != nil {
		t.Fatal(err)
	}
	if conv.Metadata.Name != "X" {
		t.Fatalf("metadata: %+v", conv.Metadata)
	}
}

func TestConvertNoCodeBlockIsParsingError(t *testing.T) {
	c := NewConverter(&fakeCompleter{reply: "I cannot convert that."}, zerolog.Nop())

	_, err := c.Convert(context.Background(), "src")
	if llm.KindOf(err) != llm.KindParsing {
		t.Fatalf("kind: got %s, want parsing", llm.KindOf(err))
	}
}

func TestConvertPassesThroughClientErrors(t *testing.T) {
	want := &llm.Error{Kind: llm.KindTimeout, Provider: "anthropic", Message: "timed out"}
	c := NewConverter(&fakeCompleter{err: want}, zerolog.Nop())

	_, err := c.Convert(context.Background(), "src")
	if llm.KindOf(err) != llm.KindTimeout {
		t.Fatalf("kind: got %s", llm.KindOf(err))
	}
}

func TestConvertPromptCarriesSource(t *testing.T) {
	f := &fakeCompleter{reply: sampleReply}
	c := NewConverter(f, zerolog.Nop())

	source := "const Unique = () => <button>Marker</button>;"
	if _, err := c.Convert(context.Background(), source); err != nil {
		t.Fatal(err)
	}
	if f.lastReq.SystemPrompt != converterSystemPrompt {
		t.Errorf("system prompt: %q", f.lastReq.SystemPrompt)
	}
	if !strings.Contains(f.lastReq.Prompt, source) {
		t.Error("source missing from prompt")
	}
}
