package questiongen

import (
	"strings"
	"testing"

	"github.com/abhisek/synapse/internal/questionbank"
)

func TestBuildUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    GenerateInput
		contains []string
		excludes []string
	}{
		{
			name:     "topic spread",
			input:    GenerateInput{Category: questionbank.CategoryMath, Count: 3, Topics: []string{"Algebra", "Geometry"}},
			contains: []string{"Section: Math: Mixed", "Number of questions: 3", "Spread across topics: Algebra, Geometry", "Difficulty: mixed", "Already asked:\nNone"},
			excludes: []string{"keeps missing", "own passage"},
		},
		{
			name:     "single topic and difficulty",
			input:    GenerateInput{Category: questionbank.CategoryMath, Count: 1, Topic: "Geometry", Topics: []string{"Algebra"}, Difficulty: 4},
			contains: []string{"Topic: Geometry", "Difficulty: 4 of 5"},
			excludes: []string{"Spread across"},
		},
		{
			name:     "reading with weak topics",
			input:    GenerateInput{Category: questionbank.CategoryReading, Count: 2, WeakTopics: []string{"Inference"}},
			contains: []string{"Reading Comprehension", "keeps missing: Inference", "own passage"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := buildUserMessage(tt.input, DefaultConfig())
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("message missing %q:\n%s", want, msg)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(msg, bad) {
					t.Errorf("message should not contain %q:\n%s", bad, msg)
				}
			}
		})
	}
}

func TestBuildDedup_KeepsMostRecent(t *testing.T) {
	got := buildDedup([]string{"q1", "q2", "q3", "q4"}, 2)
	if got != "1. q3\n2. q4" {
		t.Errorf("got %q, want %q", got, "1. q3\n2. q4")
	}
	if got := buildDedup(nil, 5); got != "None" {
		t.Errorf("got %q, want None", got)
	}
}
