// Package coach owns one learner's progress and ties the arena, the sensei
// and the vault to persistence.
package coach

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/synapse/internal/arena"
	"github.com/abhisek/synapse/internal/feedback"
	"github.com/abhisek/synapse/internal/progression"
	"github.com/abhisek/synapse/internal/questionbank"
	"github.com/abhisek/synapse/internal/store"
	"github.com/abhisek/synapse/internal/vault"
)

// DefaultKeepSnapshots is how many progress snapshots survive a prune.
const DefaultKeepSnapshots = 20

// Config holds the tunables the coach applies on top of stored progress.
type Config struct {
	Arena arena.Options

	// TargetScore and DaysLeft override the Oracle inputs when positive.
	TargetScore int
	DaysLeft    int

	KeepSnapshots int
}

// DefaultConfig returns the stock tunables.
func DefaultConfig() Config {
	return Config{
		Arena:         arena.DefaultOptions(),
		KeepSnapshots: DefaultKeepSnapshots,
	}
}

// Coach is safe for concurrent use. Storage failures are logged and never
// surface to callers, except from Reset.
type Coach struct {
	mu       sync.Mutex
	progress progression.Progress
	finished map[string]bool         // sensei session IDs already rewarded
	settled  map[string]ArenaOutcome // arena run IDs already paid out

	store  *store.Store
	events store.EventRepo
	vault  *vault.Vault
	bank   *questionbank.Bank
	engine *feedback.Engine
	config Config
	logger *zap.Logger
	now    func() time.Time
}

// New loads the latest snapshot from st, or starts a fresh learner when
// there is none or it cannot be read.
func New(ctx context.Context, st *store.Store, bank *questionbank.Bank, engine *feedback.Engine, cfg Config, logger *zap.Logger) *Coach {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.KeepSnapshots <= 0 {
		cfg.KeepSnapshots = DefaultKeepSnapshots
	}
	c := &Coach{
		finished: make(map[string]bool),
		settled:  make(map[string]ArenaOutcome),
		store:    st,
		events:   st.EventRepo(),
		vault:    vault.New(st.VaultRepo()),
		bank:     bank,
		engine:   engine,
		config:   cfg,
		logger:   logger.Named("coach"),
		now:      time.Now,
	}
	c.progress = c.load(ctx)
	return c
}

func (c *Coach) load(ctx context.Context) progression.Progress {
	snap, err := c.store.SnapshotRepo().Latest(ctx)
	if err != nil {
		c.logger.Warn("load progress snapshot, starting fresh", zap.Error(err))
		return c.fresh()
	}
	if snap == nil {
		return c.fresh()
	}
	p := snap.Data.Progress
	c.applyOracleConfig(&p)
	return p
}

func (c *Coach) fresh() progression.Progress {
	p := progression.DefaultProgress()
	c.applyOracleConfig(&p)
	return p
}

func (c *Coach) applyOracleConfig(p *progression.Progress) {
	changed := false
	if c.config.TargetScore > 0 && c.config.TargetScore != p.Oracle.TargetScore {
		p.Oracle.TargetScore = c.config.TargetScore
		changed = true
	}
	if c.config.DaysLeft > 0 && c.config.DaysLeft != p.Oracle.DaysLeft {
		p.Oracle.DaysLeft = c.config.DaysLeft
		changed = true
	}
	if changed {
		p.Oracle.Probability = progression.ProjectProbability(p.Oracle.TargetScore, p.Oracle.PredictedScore, p.Oracle.DaysLeft)
	}
}

// persist writes a snapshot of p. Callers must not hold c.mu while
// persisting a copy taken under it.
func (c *Coach) persist(ctx context.Context, p progression.Progress) {
	seq, err := c.store.CurrentSequence(ctx)
	if err != nil {
		c.logger.Warn("read event sequence", zap.Error(err))
	}
	snaps := c.store.SnapshotRepo()
	err = snaps.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: c.now(),
		Data:      store.SnapshotData{Version: store.SnapshotVersion, Progress: p},
	})
	if err != nil {
		c.logger.Warn("save progress snapshot", zap.Error(err))
		return
	}
	if err := snaps.Prune(ctx, c.config.KeepSnapshots); err != nil {
		c.logger.Warn("prune progress snapshots", zap.Error(err))
	}
}

// update applies fn under the lock, then persists the result.
func (c *Coach) update(ctx context.Context, fn func(p *progression.Progress) error) error {
	c.mu.Lock()
	if err := fn(&c.progress); err != nil {
		c.mu.Unlock()
		return err
	}
	p := c.progress
	c.mu.Unlock()

	c.persist(ctx, p)
	return nil
}

// Progress returns a copy of the current progress.
func (c *Coach) Progress() progression.Progress {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progress
}

// Bank returns the question bank the coach serves from.
func (c *Coach) Bank() *questionbank.Bank { return c.bank }

// Vault returns the weakness vault.
func (c *Coach) Vault() *vault.Vault { return c.vault }

// Events returns the event log.
func (c *Coach) Events() store.EventRepo { return c.events }

// Engine returns the feedback engine.
func (c *Coach) Engine() *feedback.Engine { return c.engine }

// Config returns the tunables in effect.
func (c *Coach) Config() Config { return c.config }

// AwardXP adds XP and reports any level change.
func (c *Coach) AwardXP(ctx context.Context, n int) progression.LevelChange {
	var change progression.LevelChange
	c.update(ctx, func(p *progression.Progress) error {
		change = p.AddXP(n)
		return nil
	})
	return change
}

func (c *Coach) AwardBrainCells(ctx context.Context, n int) {
	c.update(ctx, func(p *progression.Progress) error {
		p.AddBrainCells(n)
		return nil
	})
}

func (c *Coach) AwardDarkMatter(ctx context.Context, n int) {
	c.update(ctx, func(p *progression.Progress) error {
		p.AddDarkMatter(n)
		return nil
	})
}

// SpendBrainCells deducts n or fails with progression.ErrInsufficientFunds.
// It satisfies arena.Wallet.
func (c *Coach) SpendBrainCells(n int) error {
	return c.update(context.Background(), func(p *progression.Progress) error {
		return p.SpendBrainCells(n)
	})
}

// Reset clears stored progress, events and the vault, and starts a fresh
// learner.
func (c *Coach) Reset(ctx context.Context) error {
	if err := c.store.Reset(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	c.progress = c.fresh()
	c.finished = make(map[string]bool)
	c.settled = make(map[string]ArenaOutcome)
	p := c.progress
	c.mu.Unlock()

	c.persist(ctx, p)
	c.logger.Info("progress reset")
	return nil
}

// WeakTopics returns up to n answered topics ordered by ascending accuracy.
// Ties keep topic order.
func (c *Coach) WeakTopics(ctx context.Context, n int) []store.TopicAccuracy {
	acc, err := c.events.TopicAccuracy(ctx)
	if err != nil {
		c.logger.Warn("query topic accuracy", zap.Error(err))
		return nil
	}
	sort.SliceStable(acc, func(i, j int) bool { return acc[i].Percent() < acc[j].Percent() })
	if n > 0 && len(acc) > n {
		acc = acc[:n]
	}
	return acc
}
