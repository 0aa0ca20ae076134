package questiongen

// MaxBatch caps how many questions one request may ask for.
const MaxBatch = 10

// Config controls the Generator.
type Config struct {
	// Validators run in order; the first failure drops the question.
	Validators []Validator

	MaxTokens   int
	Temperature float64

	// MaxPriorQuestions bounds the "already asked" list in the prompt.
	MaxPriorQuestions int
}

// DefaultConfig returns the standard validator chain and limits.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&OptionsValidator{},
			&CategoryValidator{},
		},
		MaxTokens:         4096,
		Temperature:       0.7,
		MaxPriorQuestions: 12,
	}
}
