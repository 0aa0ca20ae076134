package diagnosis

// MistakeType describes a diagnosis category and the lines used to voice it.
type MistakeType struct {
	Category    Category
	Name        string
	Description string
	Responses   []string
}

var mistakeTypes = []MistakeType{
	{
		Category:    CategoryConceptual,
		Name:        "Conceptual Gap",
		Description: "You understood the steps but missed a fundamental concept.",
		Responses: []string{
			"This reveals a conceptual gap, not a careless error.",
			"The mistake here is foundational - let's address the root.",
			"This isn't about calculation - it's about understanding.",
		},
	},
	{
		Category:    CategoryProcedural,
		Name:        "Procedural Error",
		Description: "You knew the concept but made an error in execution.",
		Responses: []string{
			"You know this concept. This was a procedural slip.",
			"The understanding is there, but the execution wandered.",
			"A process error - easy to fix with awareness.",
		},
	},
	{
		Category:    CategoryCareless,
		Name:        "Careless Mistake",
		Description: "You knew the answer but made a small error.",
		Responses: []string{
			"Classic careless error. You knew this.",
			"The knowledge is solid. The attention wandered.",
			"This is about focus, not comprehension.",
		},
	},
	{
		Category:    CategoryMisread,
		Name:        "Misread Question",
		Description: "You may have misread what the question was asking.",
		Responses: []string{
			"Re-read the question. There's a word you missed.",
			"The question asked something slightly different than what you answered.",
			"Careful with the wording - the question has a specific ask.",
		},
	},
	{
		Category:    CategoryTrap,
		Name:        "Fell for Trap",
		Description: "You chose a deliberately tempting wrong answer.",
		Responses: []string{
			"That's the trap answer. Test makers designed it to look right.",
			"This answer exploits a common assumption. Let's break it.",
			"Ah, the tempting wrong choice. Here's why it's wrong:",
		},
	},
}

// registry is the package-level mistake type registry, keyed by category.
var registry map[Category]*MistakeType

func init() {
	registry = make(map[Category]*MistakeType, len(mistakeTypes))
	for i := range mistakeTypes {
		m := &mistakeTypes[i]
		registry[m.Category] = m
	}
}

// Lookup returns the mistake type for a category, or nil if unknown.
func Lookup(c Category) *MistakeType {
	return registry[c]
}

// AllMistakeTypes returns every mistake type in declaration order.
func AllMistakeTypes() []MistakeType {
	out := make([]MistakeType, len(mistakeTypes))
	copy(out, mistakeTypes)
	return out
}
