package progression

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrInsufficientFunds is returned when a spend exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient braincells")

	// ErrInvalidAmount is returned for non-positive spends.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// BrainCell rewards by source.
const (
	BrainCellsArenaCorrect  = 10
	BrainCellsArenaStreak   = 5
	BrainCellsDungeonClear  = 50
	BrainCellsBossDefeat    = 100
	BrainCellsSenseiSuccess = 75
)

// DarkMatter rewards by source.
const (
	DarkMatterBossDefeat    = 1
	DarkMatterSenseiMastery = 2
	DarkMatterRaidVictory   = 1
)

// Starting values for a fresh learner.
const (
	DefaultName        = "Scholar"
	StarterBrainCells  = 100
	DefaultTargetScore = 1500
	DefaultDaysLeft    = 45
)

// Stats holds lifetime practice counters.
type Stats struct {
	Streak         int       `json:"streak"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	Accuracy       int       `json:"accuracy"`
	StudySeconds   int       `json:"study_seconds"`
	LastActive     time.Time `json:"last_active,omitzero"`
}

// HoursStudied returns StudySeconds in whole hours.
func (s Stats) HoursStudied() int {
	return s.StudySeconds / 3600
}

// Progress is the persisted progression snapshot for one learner.
type Progress struct {
	Name       string `json:"name"`
	XP         int    `json:"xp"`
	Level      int    `json:"level"`
	BrainCells int    `json:"braincells"`
	DarkMatter int    `json:"darkmatter"`
	Stats      Stats  `json:"stats"`
	Oracle     Oracle `json:"oracle"`
}

// DefaultProgress returns the snapshot used when nothing is persisted or the
// stored copy cannot be read.
func DefaultProgress() Progress {
	p := Progress{
		Name:       DefaultName,
		Level:      1,
		BrainCells: StarterBrainCells,
		Oracle: Oracle{
			TargetScore: DefaultTargetScore,
			DaysLeft:    DefaultDaysLeft,
		},
	}
	p.Oracle.Recalculate(0)
	return p
}

// LevelChange reports the level before and after an XP award.
type LevelChange struct {
	From int
	To   int
}

// LeveledUp reports whether the award crossed a level boundary.
func (c LevelChange) LeveledUp() bool { return c.To > c.From }

// AddXP awards XP and recomputes the level.
func (p *Progress) AddXP(n int) LevelChange {
	from := p.Level
	p.XP += n
	p.Level = LevelFromXP(p.XP)
	return LevelChange{From: from, To: p.Level}
}

func (p *Progress) AddBrainCells(n int) { p.BrainCells += n }

func (p *Progress) AddDarkMatter(n int) { p.DarkMatter += n }

// SpendBrainCells deducts n if the balance covers it. On failure the balance
// is left untouched.
func (p *Progress) SpendBrainCells(n int) error {
	if n <= 0 {
		return fmt.Errorf("spend %d: %w", n, ErrInvalidAmount)
	}
	if p.BrainCells < n {
		return fmt.Errorf("spend %d of %d: %w", n, p.BrainCells, ErrInsufficientFunds)
	}
	p.BrainCells -= n
	return nil
}

// RecordRun folds a finished run into the Oracle and lifetime stats. The
// projection weighs the lifetime accuracy before this run equally with the
// run's own accuracy.
func (p *Progress) RecordRun(correct, total int) {
	if total <= 0 {
		return
	}
	session := float64(correct) / float64(total) * 100
	weighted := (float64(p.Stats.Accuracy) + session) / 2
	p.Oracle.Recalculate(weighted)

	p.Stats.TotalQuestions += total
	p.Stats.CorrectAnswers += correct
	p.Stats.Accuracy = int(math.Round(float64(p.Stats.CorrectAnswers) / float64(p.Stats.TotalQuestions) * 100))
}

// RecordActivity extends the daily streak and accumulates study time.
func (p *Progress) RecordActivity(now time.Time, studied time.Duration) {
	p.Stats.StudySeconds += int(studied / time.Second)

	today := truncateDay(now)
	if p.Stats.LastActive.IsZero() {
		p.Stats.Streak = 1
	} else {
		switch last := truncateDay(p.Stats.LastActive); {
		case last.Equal(today):
		case last.AddDate(0, 0, 1).Equal(today):
			p.Stats.Streak++
		default:
			p.Stats.Streak = 1
		}
	}
	p.Stats.LastActive = now
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
