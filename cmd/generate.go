package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/abhisek/synapse/internal/llm"
	"github.com/abhisek/synapse/internal/questionbank"
	"github.com/abhisek/synapse/internal/questiongen"
	"github.com/abhisek/synapse/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate new arena questions with an LLM",
	Long: `Generate asks the configured LLM provider for a batch of SAT-style
multiple-choice questions, validates them, drops duplicates and stores the
rest. Stored questions join the arena pool on the next start.

Provider keys come from the config file, SYNAPSE_<PROVIDER>_API_KEY, or the
provider's standard variable (ANTHROPIC_API_KEY, OPENAI_API_KEY, ...).`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("category", "c", "", "Category: math, reading or writing (required)")
	generateCmd.Flags().IntP("count", "n", 5, fmt.Sprintf("Number of questions to request (max %d)", questiongen.MaxBatch))
	generateCmd.Flags().String("topic", "", "Restrict the batch to one topic")
	generateCmd.Flags().Int("difficulty", 0, "Pin difficulty 1-5 (0 = mixed)")
	_ = generateCmd.MarkFlagRequired("category")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	categoryFlag, _ := cmd.Flags().GetString("category")
	count, _ := cmd.Flags().GetInt("count")
	topic, _ := cmd.Flags().GetString("topic")
	difficulty, _ := cmd.Flags().GetInt("difficulty")

	category, err := questionbank.ParseCategory(categoryFlag)
	if err != nil {
		return err
	}
	if difficulty < 0 || difficulty > 5 {
		return fmt.Errorf("difficulty must be between 0 and 5, got %d", difficulty)
	}

	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	settings := e.cfg.LLMSettings()
	if llm.Discover(&settings) {
		e.logger.Debug("llm provider discovered from environment")
	}
	provider, err := llm.NewProvider(ctx, settings, e.store.EventRepo(), e.logger)
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	weak := lo.Map(e.coach.WeakTopics(ctx, weakTopicCount), func(t store.TopicAccuracy, _ int) string {
		return t.Topic
	})

	gen := questiongen.New(provider, e.bank, e.store.QuestionRepo(), questiongen.DefaultConfig(), e.logger)
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Generating %d %s question(s) with %s...\n", count, category.DisplayName(), provider.ModelID())

	result, err := gen.Generate(ctx, questiongen.GenerateInput{
		Category:   category,
		Count:      count,
		Topic:      topic,
		Difficulty: difficulty,
		WeakTopics: weak,
	})
	if result != nil {
		printGenerated(w, result)
	}
	if errors.Is(err, questiongen.ErrNothingGenerated) {
		return err
	}
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	fmt.Fprintf(w, "\n%d question(s) added. %d generated question(s) in the bank.\n",
		len(result.Added), e.bank.CustomCount())
	return nil
}

func printGenerated(w io.Writer, r *questiongen.Result) {
	for _, q := range r.Added {
		fmt.Fprintf(w, "  ✓ [%s] %-20s d%d  %s\n", q.ID, truncate(q.Topic, 20), q.Difficulty, truncate(q.Text, 60))
	}
	for _, rej := range r.Rejected {
		fmt.Fprintf(w, "  ✗ %s\n      %v\n", truncate(rej.Text, 60), rej.Reason)
	}
}
