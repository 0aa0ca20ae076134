package questiongen

import (
	"strings"
	"testing"

	"github.com/abhisek/synapse/internal/questionbank"
)

func validQuestion() questionbank.Question {
	return questionbank.Question{
		Category:    questionbank.CategoryMath,
		Topic:       "Algebra",
		Difficulty:  3,
		Text:        "If 3x = 12, what is x?",
		Options:     []string{"3", "4", "9", "36"},
		Correct:     1,
		Explanation: "Divide both sides by 3.",
	}
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(q *questionbank.Question)
		input     GenerateInput
		validator string
	}{
		{"valid", func(q *questionbank.Question) {}, GenerateInput{}, ""},
		{"empty text", func(q *questionbank.Question) { q.Text = "  " }, GenerateInput{}, "structural"},
		{"long text", func(q *questionbank.Question) { q.Text = strings.Repeat("x", 601) }, GenerateInput{}, "structural"},
		{"no explanation", func(q *questionbank.Question) { q.Explanation = "" }, GenerateInput{}, "structural"},
		{"no topic", func(q *questionbank.Question) { q.Topic = "" }, GenerateInput{}, "structural"},
		{"difficulty zero", func(q *questionbank.Question) { q.Difficulty = 0 }, GenerateInput{}, "structural"},
		{"difficulty six", func(q *questionbank.Question) { q.Difficulty = 6 }, GenerateInput{}, "structural"},
		{"one option", func(q *questionbank.Question) { q.Options = q.Options[:1]; q.Correct = 0 }, GenerateInput{}, "options"},
		{"correct out of range", func(q *questionbank.Question) { q.Correct = 4 }, GenerateInput{}, "options"},
		{"negative correct", func(q *questionbank.Question) { q.Correct = -1 }, GenerateInput{}, "options"},
		{"duplicate options", func(q *questionbank.Question) { q.Options[2] = " 4 " }, GenerateInput{}, "options"},
		{"blank option", func(q *questionbank.Question) { q.Options[3] = "" }, GenerateInput{}, "options"},
		{"topic mismatch", func(q *questionbank.Question) {}, GenerateInput{Topic: "Geometry"}, "category"},
		{"topic match ignores case", func(q *questionbank.Question) {}, GenerateInput{Topic: "algebra"}, ""},
		{"reading without passage", func(q *questionbank.Question) { q.Category = questionbank.CategoryReading }, GenerateInput{}, "category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)

			var failed string
			for _, v := range DefaultConfig().Validators {
				if verr := v.Validate(&q, tt.input); verr != nil {
					failed = verr.Validator
					break
				}
			}
			if failed != tt.validator {
				t.Errorf("failed validator = %q, want %q", failed, tt.validator)
			}
		})
	}
}
