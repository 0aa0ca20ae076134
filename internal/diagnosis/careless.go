package diagnosis

// AdjacentClassifier flags a pick one position away from the correct option
// as a careless slip.
type AdjacentClassifier struct{}

func (c *AdjacentClassifier) Name() string { return "adjacent" }

func (c *AdjacentClassifier) Classify(input *ClassifyInput) Category {
	d := input.CorrectIndex - input.SelectedIndex
	if d == 1 || d == -1 {
		return CategoryCareless
	}
	return ""
}

// TrapIndex returns the option designated as the tempting wrong choice for
// a question whose correct option is at correct.
func TrapIndex(correct int) int {
	if correct == 0 {
		return 1
	}
	return correct - 1
}

// TrapClassifier flags a pick of the trap position.
type TrapClassifier struct{}

func (c *TrapClassifier) Name() string { return "trap" }

func (c *TrapClassifier) Classify(input *ClassifyInput) Category {
	if input.SelectedIndex == TrapIndex(input.CorrectIndex) {
		return CategoryTrap
	}
	return ""
}
