package sensei

import "math"

// SatisfiedBonus is added to the percentage when every step was completed.
const SatisfiedBonus = 40

// Grade is a session letter grade.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// Tier is the fixed reward and feedback for one grade.
type Tier struct {
	Grade      Grade
	Min        float64
	Class      string
	XP         int
	DarkMatter int
	Feedback   string
}

// tiers are checked top down; the last tier catches everything.
var tiers = []Tier{
	{GradeA, 85, "excellent", 150, 2, "Outstanding teaching! You explained concepts clearly, provided depth, and engaged effectively. Your understanding of this topic is masterful."},
	{GradeB, 70, "good", 100, 1, "Good teaching session. You demonstrated solid understanding, though some explanations could be clearer or more detailed."},
	{GradeC, 50, "needs-work", 50, 0, "Acceptable effort, but your explanations need more clarity and depth. Practice breaking down concepts into simpler parts."},
	{GradeD, math.Inf(-1), "needs-work", 25, 0, "Your explanations were too vague or incomplete. Remember: if you can't explain it simply, you may need to review this topic yourself."},
}

// Evaluation is the graded outcome of a session.
type Evaluation struct {
	Grade       Grade
	Class       string
	Percentage  float64
	TotalScore  int
	MaxPossible int
	Scores      Scores
	Satisfied   bool
	XP          int
	DarkMatter  int
	Feedback    string
}

// MaxPossible returns the normalizer for a session that reached step.
// It grows with the steps reached and does not bound the raw total.
func MaxPossible(c Criteria, step int) int {
	return c.Size() * (step + 1)
}

// Percentage computes the grading percentage. Only the final value is capped
// at 100, so the raw ratio may exceed 100 before the cap.
func Percentage(total, maxPossible int, satisfied bool) float64 {
	var pct float64
	if maxPossible > 0 {
		pct = float64(total) / float64(maxPossible) * 100
	}
	if satisfied {
		pct += SatisfiedBonus
	}
	return math.Min(100, pct)
}

// TierFor returns the tier for a percentage. Satisfied sessions always get A.
func TierFor(pct float64, satisfied bool) Tier {
	if satisfied {
		return tiers[0]
	}
	for _, t := range tiers {
		if pct >= t.Min {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// Evaluate grades a session in its current state. It is meant for completed
// or ended sessions but does not modify the session.
func Evaluate(s *Session) Evaluation {
	total := s.Scores.Total()
	maxPossible := MaxPossible(s.Topic.Criteria, s.Step)
	pct := Percentage(total, maxPossible, s.Satisfied)
	t := TierFor(pct, s.Satisfied)
	return Evaluation{
		Grade:       t.Grade,
		Class:       t.Class,
		Percentage:  pct,
		TotalScore:  total,
		MaxPossible: maxPossible,
		Scores:      s.Scores,
		Satisfied:   s.Satisfied,
		XP:          t.XP,
		DarkMatter:  t.DarkMatter,
		Feedback:    t.Feedback,
	}
}
