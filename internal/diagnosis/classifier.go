package diagnosis

// Classifier is a positional rule over option indexes.
// Returns a category, or "" if the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) Category
}

// DefaultClassifiers returns classifiers in priority order.
// Adjacency is checked before the trap position, so a trap pick that also
// sits next to the correct option reports as careless.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&AdjacentClassifier{},
		&TrapClassifier{},
	}
}

// RunClassifiers executes classifiers in order.
// Returns the first match, or ("", "") if no rules apply.
func RunClassifiers(classifiers []Classifier, input *ClassifyInput) (Category, string) {
	for _, c := range classifiers {
		if cat := c.Classify(input); cat != "" {
			return cat, c.Name()
		}
	}
	return "", ""
}
