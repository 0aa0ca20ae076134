// Package questiongen asks an LLM for new SAT-style multiple-choice
// questions, checks them and adds the survivors to the question bank.
package questiongen

import (
	"fmt"

	"github.com/abhisek/synapse/internal/questionbank"
)

// GenerateInput describes one batch request.
type GenerateInput struct {
	Category questionbank.Category

	// Count is how many questions to ask for. Clamped to [1, MaxBatch].
	Count int

	// Topic narrows the batch to one topic. Empty lets the model spread
	// across Topics.
	Topic string

	// Topics are the known topics for the category, offered as guidance.
	Topics []string

	// Difficulty pins every question to one level. Zero means mixed.
	Difficulty int

	// WeakTopics are topics the learner keeps missing, oldest first.
	WeakTopics []string

	// PriorQuestions holds existing question texts the model must not repeat.
	PriorQuestions []string
}

// Result is the outcome of one batch.
type Result struct {
	Added    []questionbank.Question
	Rejected []Rejection
}

// Rejection records why a generated question was dropped.
type Rejection struct {
	Text   string
	Reason error
}

// Validator checks one generated question.
type Validator interface {
	Name() string
	Validate(q *questionbank.Question, input GenerateInput) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
