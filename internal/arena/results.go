package arena

import (
	"fmt"
	"math"
)

// Reward rates and bonuses.
const (
	XPPerCorrect         = 15
	BrainCellsPerCorrect = 10

	ExcellentAccuracy = 80
	GoodAccuracy      = 60

	ExcellentXPBonus         = 25
	ExcellentBrainCellsBonus = 15
	PerfectXPBonus           = 50
	PerfectBrainCellsBonus   = 25

	WagerMultiplier = 2
)

// Results summarizes a finished run.
type Results struct {
	Correct    int
	Total      int
	Accuracy   int
	Duration   string
	XP         int
	BrainCells int
	Wagered    bool
	Hints      int
	Title      string
	Icon       string
}

// ResultsFor computes accuracy, rewards, and title for correct of total.
// A perfect run also earns the excellent bonus.
func ResultsFor(correct, total int, wagered bool) Results {
	res := Results{Correct: correct, Total: total, Wagered: wagered}
	if total > 0 {
		res.Accuracy = int(math.Round(float64(correct) / float64(total) * 100))
	}

	res.XP = correct * XPPerCorrect
	res.BrainCells = correct * BrainCellsPerCorrect
	if res.Accuracy >= ExcellentAccuracy {
		res.XP += ExcellentXPBonus
		res.BrainCells += ExcellentBrainCellsBonus
	}
	if res.Accuracy == 100 {
		res.XP += PerfectXPBonus
		res.BrainCells += PerfectBrainCellsBonus
	}
	if wagered {
		res.XP *= WagerMultiplier
		res.BrainCells *= WagerMultiplier
	}

	res.Title, res.Icon = Title(res.Accuracy)
	return res
}

// Title returns the results heading and icon for an accuracy percentage.
func Title(accuracy int) (string, string) {
	switch {
	case accuracy == 100:
		return "Perfect Score!", "🏆"
	case accuracy >= ExcellentAccuracy:
		return "Excellent Work!", "⭐"
	case accuracy >= GoodAccuracy:
		return "Good Effort!", "👍"
	}
	return "Keep Practicing!", "📚"
}

// FormatDuration renders seconds as m:ss.
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatClock renders the per-question countdown as mm:ss.
func FormatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Urgency classifies the countdown for display.
type Urgency int

const (
	UrgencyNormal Urgency = iota
	UrgencyWarning
	UrgencyDanger
)

// UrgencyFor returns the countdown urgency for remaining seconds.
func UrgencyFor(remaining int) Urgency {
	switch {
	case remaining <= 10:
		return UrgencyDanger
	case remaining <= 30:
		return UrgencyWarning
	}
	return UrgencyNormal
}
