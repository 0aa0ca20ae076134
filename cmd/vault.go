package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/synapse/internal/vault"
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "List questions in the weakness vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		v := e.coach.Vault()
		var items []vault.Item
		if topic != "" {
			items, err = v.ByTopic(ctx, topic)
		} else {
			items, err = v.Active(ctx)
		}
		if err != nil {
			return fmt.Errorf("list vault: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(items) == 0 {
			fmt.Fprintln(w, "No weaknesses yet! Keep battling in the Arena.")
			return nil
		}

		fmt.Fprintf(w, "%-10s  %-20s  %-8s  %-9s  %s\n", "ID", "Topic", "Correct", "Saved", "Question")
		fmt.Fprintln(w, strings.Repeat("─", 96))
		now := time.Now()
		for _, it := range items {
			fmt.Fprintf(w, "%-10s  %-20s  %d/%-6d  %-9s  %s\n",
				truncate(it.Question.ID, 10),
				truncate(it.Question.Topic, 20),
				it.CorrectAttempts, vault.MasteryThreshold,
				vault.RelativeTime(it.SavedAt, now),
				vault.Truncate(it.Question.Text, 40),
			)
		}

		stats, err := v.Stats(ctx)
		if err != nil {
			return fmt.Errorf("vault stats: %w", err)
		}
		fmt.Fprintf(w, "\n%d active, %d mastered", stats.Active, stats.Mastered)
		if stats.WeakestTopic != "" {
			fmt.Fprintf(w, ", weakest topic: %s", stats.WeakestTopic)
		}
		fmt.Fprintln(w)
		return nil
	},
}

func init() {
	vaultCmd.Flags().StringP("topic", "t", "", "Only show items whose topic contains this text")
}
