package tasks

import "testing"

const sampleReply = "Here is the converted component:\n" +
	"```tsx\nexport const Hero = (props: HeroProps) => <a href={props.href}>{props.text}</a>;\n```\n" +
	"And the props file:\n" +
	"```ts\nexport interface HeroProps { href: string; text: string }\n```\n" +
	"Metadata:\n" +
	"```json\n{\"name\": \"Hero\", \"props\": \"HeroProps\", \"props_file_name\": \"hero.props.ts\"}\n```\n"

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name     string
		language string
		want     string
	}{
		{"tsx block", "tsx", "export const Hero = (props: HeroProps) => <a href={props.href}>{props.text}</a>;"},
		{"ts block not confused with tsx", "ts", "export interface HeroProps { href: string; text: string }"},
		{"json block", "json", `{"name": "Hero", "props": "HeroProps", "props_file_name": "hero.props.ts"}`},
		{"absent language", "python", ""},
	}
	for _, tt := range tests {
		if got := ExtractCode(sampleReply, tt.language); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestExtractCodeUnterminatedBlock(t *testing.T) {
	got := ExtractCode("```go\npackage main", "go")
	if got != "package main" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractCodeNoBlocks(t *testing.T) {
	if got := ExtractCode("plain text, no fences", ""); got != "" {
		t.Fatalf("got %q", got)
	}
}
