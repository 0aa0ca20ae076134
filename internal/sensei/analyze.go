package sensei

import "strings"

// Dimension names.
const (
	DimensionClarity    = "clarity"
	DimensionDepth      = "depth"
	DimensionEngagement = "engagement"
)

// Scores are the per-dimension keyword tallies for a session.
type Scores struct {
	Clarity    int `json:"clarity"`
	Depth      int `json:"depth"`
	Engagement int `json:"engagement"`
}

// Total returns the sum across dimensions.
func (s Scores) Total() int { return s.Clarity + s.Depth + s.Engagement }

// Add returns the element-wise sum.
func (s Scores) Add(o Scores) Scores {
	return Scores{
		Clarity:    s.Clarity + o.Clarity,
		Depth:      s.Depth + o.Depth,
		Engagement: s.Engagement + o.Engagement,
	}
}

// CountKeywords counts how many keywords occur in text as case-folded
// substrings. Each keyword counts at most once per call, but overlapping
// keywords each count.
func CountKeywords(keywords []string, text string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			n++
		}
	}
	return n
}

// Analyze scores one message against a topic's criteria.
func Analyze(c Criteria, text string) Scores {
	return Scores{
		Clarity:    CountKeywords(c.Clarity, text),
		Depth:      CountKeywords(c.Depth, text),
		Engagement: CountKeywords(c.Engagement, text),
	}
}

// containsAny reports whether text contains any of the triggers,
// case-insensitively.
func containsAny(text string, triggers []string) bool {
	lower := strings.ToLower(text)
	for _, t := range triggers {
		if strings.Contains(lower, strings.ToLower(t)) {
			return true
		}
	}
	return false
}
