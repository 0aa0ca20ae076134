package coach

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/synapse/internal/arena"
	"github.com/abhisek/synapse/internal/progression"
	"github.com/abhisek/synapse/internal/questionbank"
	"github.com/abhisek/synapse/internal/store"
	"github.com/abhisek/synapse/internal/vault"
)

// ArenaOutcome is what a finished run changed.
type ArenaOutcome struct {
	Results arena.Results
	Level   progression.LevelChange

	// Vaulted counts wrong answers newly saved to the vault.
	Vaulted int

	// Repeat is set when the run had already been settled; nothing was paid.
	Repeat bool
}

// StartArena opens a run in category. The wager, when requested, is paid
// from this coach's balance.
func (c *Coach) StartArena(category questionbank.Category, wager bool) (*arena.Run, error) {
	opts := c.config.Arena
	opts.Wager = wager
	run, err := arena.Start(c.bank, c, category, c.engine, opts)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("arena run started",
		zap.String("run", run.ID),
		zap.String("category", string(category)),
		zap.Bool("wager", run.Wager),
		zap.Bool("wager_declined", run.WagerDeclined),
	)
	return run, nil
}

// FinishArena closes run, pays out rewards, folds the run into the Oracle
// and stats, records events and vaults wrong answers. A run is settled
// once; later calls return the first outcome with Repeat set.
func (c *Coach) FinishArena(ctx context.Context, run *arena.Run) ArenaOutcome {
	c.mu.Lock()
	if prev, ok := c.settled[run.ID]; ok {
		c.mu.Unlock()
		prev.Repeat = true
		return prev
	}
	c.settled[run.ID] = ArenaOutcome{}
	c.mu.Unlock()

	res := run.Finish()
	out := ArenaOutcome{Results: res}
	defer func() {
		c.mu.Lock()
		c.settled[run.ID] = out
		c.mu.Unlock()
	}()

	c.update(ctx, func(p *progression.Progress) error {
		out.Level = p.AddXP(res.XP)
		p.AddBrainCells(res.BrainCells)
		p.RecordRun(res.Correct, res.Total)
		p.RecordActivity(c.now(), time.Duration(run.TotalTime)*time.Second)
		return nil
	})

	for _, a := range run.Answers {
		data := store.AnswerEventData{
			RunID:         run.ID,
			QuestionID:    a.Question.ID,
			Category:      string(a.Question.Category),
			Topic:         a.Question.Topic,
			CorrectIndex:  a.Question.Correct,
			SelectedIndex: a.Selected,
			Correct:       a.Correct,
			TimeRemaining: a.TimeRemaining,
		}
		if d := a.Reply.Diagnosis; d != nil {
			data.Diagnosis = string(d.Category)
		}
		if err := c.events.AppendAnswer(ctx, data); err != nil {
			c.logger.Warn("record answer event", zap.Error(err))
		}

		if a.Correct {
			continue
		}
		saved, err := c.vault.Save(ctx, a.Question, a.Selected)
		if err != nil {
			c.logger.Warn("vault missed question", zap.String("question", a.Question.ID), zap.Error(err))
			continue
		}
		if saved {
			out.Vaulted++
		}
	}

	err := c.events.AppendArenaRun(ctx, store.ArenaEventData{
		RunID:        run.ID,
		Category:     string(run.Category),
		Total:        res.Total,
		Correct:      res.Correct,
		Wagered:      res.Wagered,
		Hints:        res.Hints,
		XP:           res.XP,
		BrainCells:   res.BrainCells,
		DurationSecs: run.TotalTime,
	})
	if err != nil {
		c.logger.Warn("record arena event", zap.Error(err))
	}

	c.logger.Info("arena run finished",
		zap.String("run", run.ID),
		zap.Int("correct", res.Correct),
		zap.Int("total", res.Total),
		zap.Int("xp", res.XP),
		zap.Int("vaulted", out.Vaulted),
	)
	return out
}

// ErrNotVaulted is returned when practicing a question that is not in the
// vault.
var ErrNotVaulted = errors.New("question is not in the vault")

// VaultAttempt is the outcome of one vault retry.
type VaultAttempt struct {
	Item          *vault.Item
	Correct       bool
	NewlyMastered bool
}

// PracticeVault grades a retry of a vaulted question. Correct retries earn
// the arena per-answer XP.
func (c *Coach) PracticeVault(ctx context.Context, questionID string, selected int) (*VaultAttempt, error) {
	item, err := c.vault.Get(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("practice %s: %w", questionID, ErrNotVaulted)
	}

	correct := selected == item.Question.Correct
	updated, err := c.vault.RecordAttempt(ctx, questionID, correct)
	if err != nil {
		return nil, err
	}
	if correct {
		c.AwardXP(ctx, arena.XPPerCorrect)
	}
	return &VaultAttempt{
		Item:          updated,
		Correct:       correct,
		NewlyMastered: updated.Mastered && !item.Mastered,
	}, nil
}
