// Package progression implements the experience curve, the in-game
// currencies, and the Oracle score projection.
package progression

import "math"

const (
	// BaseLevelCost is the XP needed to clear level 1.
	BaseLevelCost = 1000

	// LevelGrowthRate compounds the cost of each subsequent level.
	LevelGrowthRate = 1.15
)

// CostOfLevel returns the XP needed to clear the given level. Levels below 1
// are treated as level 1.
func CostOfLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(BaseLevelCost * math.Pow(LevelGrowthRate, float64(level-1))))
}

// TotalXPForLevel returns the cumulative XP at which the given level begins.
// Each level's cost is floored before it is added.
func TotalXPForLevel(level int) int {
	total := 0
	for l := 1; l < level; l++ {
		total += CostOfLevel(l)
	}
	return total
}

// LevelFromXP returns the level reached with the given cumulative XP.
func LevelFromXP(total int) int {
	level := 1
	spent := 0
	for spent+CostOfLevel(level) <= total {
		spent += CostOfLevel(level)
		level++
	}
	return level
}

// LevelProgress returns how far through the current level total is, as a
// percentage in [0, 100).
func LevelProgress(total int) float64 {
	level := LevelFromXP(total)
	into := total - TotalXPForLevel(level)
	if into < 0 {
		return 0
	}
	return float64(into) / float64(CostOfLevel(level)) * 100
}

// XPToNextLevel returns the XP still needed to reach the next level.
func XPToNextLevel(total int) int {
	level := LevelFromXP(total)
	return TotalXPForLevel(level+1) - max(total, 0)
}
