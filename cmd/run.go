package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/synapse/internal/app"
	"github.com/abhisek/synapse/internal/coach"
	"github.com/abhisek/synapse/internal/config"
	"github.com/abhisek/synapse/internal/feedback"
	"github.com/abhisek/synapse/internal/logging"
	"github.com/abhisek/synapse/internal/pick"
	"github.com/abhisek/synapse/internal/questionbank"
	"github.com/abhisek/synapse/internal/questiongen"
	"github.com/abhisek/synapse/internal/store"
)

// env holds everything a command needs once the store is open.
type env struct {
	cfg    *config.Config
	store  *store.Store
	logger *zap.Logger
	bank   *questionbank.Bank
	coach  *coach.Coach
}

// setup loads config, opens the store, builds the logger and the question
// bank (built-in plus stored generated questions) and the coach.
func setup(cmd *cobra.Command) (*env, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logPath := cfg.Log.File
	if logPath == "" {
		logPath = logging.PathFor(dbPath)
	}
	logger, err := logging.New(logPath, cfg.Log.Level, verbose)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}

	bank := questionbank.New()
	n, err := questiongen.LoadStored(ctx, st.QuestionRepo(), bank)
	if err != nil {
		logger.Warn("load generated questions", zap.Error(err))
	}
	logger.Debug("store opened", zap.String("path", dbPath), zap.Int("generated_questions", n))

	c := coach.New(ctx, st, bank, feedback.NewEngine(pick.New()), coach.Config{
		Arena:       cfg.ArenaOptions(false),
		TargetScore: cfg.Oracle.TargetScore,
		DaysLeft:    cfg.Oracle.DaysLeft,
	}, logger)

	return &env{cfg: cfg, store: st, logger: logger, bank: bank, coach: c}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Warn("close store", zap.Error(err))
	}
	_ = e.logger.Sync()
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	e.logger.Info("tui started")
	return app.Run(e.coach)
}
