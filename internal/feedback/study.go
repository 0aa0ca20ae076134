package feedback

import "sort"

// Fallback areas used when no skill progress is known.
const (
	DefaultWeakArea   = "reading comprehension"
	DefaultStrongArea = "problem solving"
)

// WeakThreshold is the progress percentage below which a skill counts as weak.
const WeakThreshold = 50

// Encouragement returns one encouraging line.
func (e *Engine) Encouragement() string {
	return e.mustRender(PoolEncouragement, nil)
}

// StudyRecommendation suggests what to practice next from per-skill progress
// percentages. Skills are considered in name order.
func (e *Engine) StudyRecommendation(progress map[string]float64) string {
	names := make([]string, 0, len(progress))
	for name := range progress {
		names = append(names, name)
	}
	sort.Strings(names)

	weak, strong := "", ""
	for _, name := range names {
		if progress[name] < WeakThreshold {
			if weak == "" {
				weak = name
			}
		} else if strong == "" {
			strong = name
		}
	}
	if weak == "" {
		weak = DefaultWeakArea
	}
	if strong == "" {
		strong = DefaultStrongArea
	}

	return e.mustRender(PoolStudyRec, map[string]string{
		"topic":      weak,
		"weakArea":   weak,
		"strongArea": strong,
	})
}
