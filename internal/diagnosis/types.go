package diagnosis

// Category classifies a wrong multiple-choice answer.
type Category string

const (
	CategoryConceptual Category = "conceptual"
	CategoryProcedural Category = "procedural"
	CategoryCareless   Category = "careless"
	CategoryMisread    Category = "misread"
	CategoryTrap       Category = "trap"
)

// NoAnswer is the selected index recorded when the clock ran out before the
// learner picked an option.
const NoAnswer = -1

// ClassifyInput holds the option indexes being compared.
type ClassifyInput struct {
	CorrectIndex  int
	SelectedIndex int
}

// Result is the output of diagnosing a wrong answer.
type Result struct {
	Category       Category
	Response       string // One line sampled from the category's response pool
	ClassifierName string // Which rule produced this result
}

// Type returns the mistake type metadata for the result's category.
func (r *Result) Type() *MistakeType {
	return Lookup(r.Category)
}
