package llm

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "batch",
		"properties": map[string]any{
			"topic":   map[string]any{"type": "string", "enum": []any{"Algebra", "Geometry"}},
			"correct": map[string]any{"type": "integer"},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 2,
				"maxItems": 5,
			},
		},
		"required": []string{"topic", "correct"},
	}

	s := geminiSchema(def)
	if s.Type != genai.TypeObject {
		t.Fatalf("expected object, got %v", s.Type)
	}
	if s.Description != "batch" {
		t.Fatalf("unexpected description %q", s.Description)
	}
	if len(s.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %v", s.Required)
	}
	if got := s.Properties["topic"].Enum; len(got) != 2 || got[0] != "Algebra" {
		t.Fatalf("unexpected enum %v", got)
	}
	if s.Properties["correct"].Type != genai.TypeInteger {
		t.Fatalf("expected integer, got %v", s.Properties["correct"].Type)
	}

	opts := s.Properties["options"]
	if opts.Type != genai.TypeArray || opts.Items == nil || opts.Items.Type != genai.TypeString {
		t.Fatalf("unexpected array schema %+v", opts)
	}
	if opts.MinItems == nil || *opts.MinItems != 2 || opts.MaxItems == nil || *opts.MaxItems != 5 {
		t.Fatalf("unexpected item bounds %v %v", opts.MinItems, opts.MaxItems)
	}
}

func TestGeminiSchema_UnknownTypeFallsBackToString(t *testing.T) {
	if s := geminiSchema(map[string]any{"type": "null"}); s.Type != genai.TypeString {
		t.Fatalf("expected string fallback, got %v", s.Type)
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(context.Background(), GeminiConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected error without API key")
	}
}
