package tasks

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGenerateNormalizesImagesAndIcons(t *testing.T) {
	r := &fakeResolver{value: []any{
		map[string]any{
			"title":     "Plan A",
			"image":     "mountains at dusk",
			"icon":      "user",
			"thumbnail": "https://source.unsplash.com/random?existing",
		},
	}}
	g := NewGenerator(r, zerolog.Nop())

	schema := json.RawMessage(`{"type":"object","properties":{"title":{"type":"string"}}}`)
	got, err := g.Generate(context.Background(), []json.RawMessage{schema}, "pricing card", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d items", len(got))
	}
	item := got[0]

	image, _ := item["image"].(string)
	if !strings.HasPrefix(image, "https://source.unsplash.com/random?") {
		t.Errorf("image: %q", image)
	}
	if item["thumbnail"] != "https://source.unsplash.com/random?existing" {
		t.Errorf("existing URL rewritten: %v", item["thumbnail"])
	}

	icon, ok := item["icon"].(map[string]any)
	if !ok {
		t.Fatalf("icon: %T", item["icon"])
	}
	if icon["package"] != "react-icons/fa" || icon["name"] != "FaUser" {
		t.Errorf("icon: %v", icon)
	}
}

func TestGenerateNormalizesNestedValues(t *testing.T) {
	r := &fakeResolver{value: []any{
		map[string]any{
			"sections": []any{
				map[string]any{"logo": "MdHome"},
			},
		},
	}}
	g := NewGenerator(r, zerolog.Nop())

	got, err := g.Generate(context.Background(), nil, "", 1)
	if err != nil {
		t.Fatal(err)
	}
	sections := got[0]["sections"].([]any)
	logo := sections[0].(map[string]any)["logo"].(map[string]any)
	if logo["package"] != "react-icons/md" || logo["name"] != "MdHome" {
		t.Fatalf("logo: %v", logo)
	}
}

func TestGeneratePromptCarriesSchemasAndCount(t *testing.T) {
	r := &fakeResolver{value: []any{map[string]any{"a": "b"}}}
	g := NewGenerator(r, zerolog.Nop())

	schema := json.RawMessage(`{"type":"object","required":["headline"]}`)
	if _, err := g.Generate(context.Background(), []json.RawMessage{schema}, "be playful", 3); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(r.lastReq.Prompt, "Generate 3 examples") {
		t.Errorf("count missing: %q", r.lastReq.Prompt)
	}
	if !strings.Contains(r.lastReq.Prompt, "headline") {
		t.Errorf("schema missing: %q", r.lastReq.Prompt)
	}
	if !strings.Contains(r.lastReq.Prompt, "be playful") {
		t.Errorf("instructions missing: %q", r.lastReq.Prompt)
	}
}

func TestGenerateSkipsNonObjectItems(t *testing.T) {
	r := &fakeResolver{value: []any{"stray string", map[string]any{"ok": true}}}
	g := NewGenerator(r, zerolog.Nop())

	got, err := g.Generate(context.Background(), nil, "", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d items", len(got))
	}
}

func TestFormatIcon(t *testing.T) {
	tests := []struct {
		in      string
		pkg     string
		name    string
	}{
		{"user", "react-icons/fa", "FaUser"},
		{"FaRocket", "react-icons/fa", "FaRocket"},
		{"MdHome", "react-icons/md", "MdHome"},
		{"IoPlay", "react-icons/io", "IoPlay"},
		{"BiBell", "react-icons/bi", "BiBell"},
		{"FiClock", "react-icons/fi", "FiClock"},
		{"Zap", "react-icons/fa", "Zap"},
	}
	for _, tt := range tests {
		got := formatIcon(tt.in)
		if got["package"] != tt.pkg || got["name"] != tt.name {
			t.Errorf("%q: got %v", tt.in, got)
		}
	}
}
