package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/synapse/internal/questionbank"
)

const systemPrompt = `You write practice questions for the digital SAT.

Rules:
- Every question is multiple choice with exactly one correct option.
- Give 4 options unless the question genuinely needs fewer. Never repeat an option.
- Distractors should reflect real student mistakes: sign errors, misread questions, tempting half-truths.
- Use plain text for math. No LaTeX. Write exponents as x^2 and fractions as 3/4.
- Reading questions include a short passage of 2-5 sentences. Other questions leave passage empty.
- "correct" is the zero-based index into options.
- The explanation walks through the solution and says why the tempting wrong answer fails.
- Do not repeat any question from the "already asked" list.`

func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Section: %s\n", input.Category.DisplayName())
	fmt.Fprintf(&b, "Number of questions: %d\n", input.Count)

	switch {
	case input.Topic != "":
		fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	case len(input.Topics) > 0:
		fmt.Fprintf(&b, "Spread across topics: %s\n", strings.Join(input.Topics, ", "))
	}

	if input.Difficulty > 0 {
		fmt.Fprintf(&b, "Difficulty: %d of 5\n", input.Difficulty)
	} else {
		b.WriteString("Difficulty: mixed, 2 to 4 of 5\n")
	}

	if len(input.WeakTopics) > 0 {
		fmt.Fprintf(&b, "The learner keeps missing: %s. Lean toward these.\n", strings.Join(input.WeakTopics, ", "))
	}
	if input.Category == questionbank.CategoryReading {
		b.WriteString("Each question needs its own passage.\n")
	}

	b.WriteString("\nAlready asked:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))
	return b.String()
}

// buildDedup lists the most recent prior questions, or "None".
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
