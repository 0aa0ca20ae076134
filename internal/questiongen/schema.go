package questiongen

import "github.com/abhisek/synapse/internal/llm"

// BatchSchema is the structured output requested from the model.
var BatchSchema = &llm.Schema{
	Name:        "sat-question-batch",
	Description: "A batch of SAT-style multiple-choice practice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": MaxBatch,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"topic": map[string]any{
							"type":        "string",
							"description": "SAT topic, e.g. Algebra or Inference",
						},
						"difficulty": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     5,
							"description": "1 (easy) to 5 (hard)",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question stem in plain text",
						},
						"passage": map[string]any{
							"type":        "string",
							"description": "Reading passage for reading questions, otherwise empty",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    2,
							"maxItems":    5,
							"description": "Answer choices without letter prefixes",
						},
						"correct": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Worked solution explaining why the answer is correct",
						},
					},
					"required":             []any{"topic", "difficulty", "question", "passage", "options", "correct", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
