package diagnosis

import "github.com/abhisek/synapse/internal/pick"

// Diagnoser classifies wrong answers and voices the result.
type Diagnoser struct {
	classifiers []Classifier
	src         pick.Source
}

// NewDiagnoser creates a diagnoser using the default rule chain. Responses are
// drawn from src.
func NewDiagnoser(src pick.Source) *Diagnoser {
	return &Diagnoser{
		classifiers: DefaultClassifiers(),
		src:         src,
	}
}

// Classify returns the category for a pick without sampling a response.
// Anything no rule claims is a conceptual gap.
func (d *Diagnoser) Classify(correct, selected int) (Category, string) {
	cat, name := RunClassifiers(d.classifiers, &ClassifyInput{
		CorrectIndex:  correct,
		SelectedIndex: selected,
	})
	if cat == "" {
		return CategoryConceptual, "default"
	}
	return cat, name
}

// Diagnose classifies a wrong pick and samples one response line for it.
// NoAnswer is compared like any other index.
func (d *Diagnoser) Diagnose(correct, selected int) *Result {
	cat, name := d.Classify(correct, selected)
	return &Result{
		Category:       cat,
		Response:       pick.One(d.src, Lookup(cat).Responses),
		ClassifierName: name,
	}
}
