package questiongen

import (
	"strings"
	"unicode/utf8"

	"github.com/abhisek/synapse/internal/questionbank"
)

// StructuralValidator checks required fields and length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *questionbank.Question, _ GenerateInput) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}
	switch {
	case strings.TrimSpace(q.Text) == "":
		return fail("question is empty")
	case utf8.RuneCountInString(q.Text) > 600:
		return fail("question exceeds 600 characters")
	case strings.TrimSpace(q.Explanation) == "":
		return fail("explanation is empty")
	case utf8.RuneCountInString(q.Explanation) > 1200:
		return fail("explanation exceeds 1200 characters")
	case strings.TrimSpace(q.Topic) == "":
		return fail("topic is empty")
	case q.Difficulty < 1 || q.Difficulty > 5:
		return fail("difficulty must be between 1 and 5")
	}
	return nil
}

// OptionsValidator checks the answer choices.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(q *questionbank.Question, _ GenerateInput) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}
	if len(q.Options) < 2 {
		return fail("need at least 2 options")
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fail("correct index out of range")
	}
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		key := strings.ToLower(strings.TrimSpace(opt))
		if key == "" {
			return fail("empty option")
		}
		if seen[key] {
			return fail("duplicate option " + opt)
		}
		seen[key] = true
	}
	return nil
}

// CategoryValidator checks section-specific rules.
type CategoryValidator struct{}

func (v *CategoryValidator) Name() string { return "category" }

func (v *CategoryValidator) Validate(q *questionbank.Question, input GenerateInput) *ValidationError {
	if input.Topic != "" && !strings.EqualFold(q.Topic, input.Topic) {
		return &ValidationError{Validator: v.Name(), Message: "topic " + q.Topic + " does not match " + input.Topic}
	}
	if q.Category == questionbank.CategoryReading && strings.TrimSpace(q.Passage) == "" {
		return &ValidationError{Validator: v.Name(), Message: "reading question has no passage"}
	}
	return nil
}
