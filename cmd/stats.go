package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/synapse/internal/coach"
	"github.com/abhisek/synapse/internal/progression"
	"github.com/abhisek/synapse/internal/store"
)

// weakTopicCount is how many of the weakest topics stats lists.
const weakTopicCount = 3

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show level, currencies, streak and the Oracle projection",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		printStats(cmd.OutOrStdout(), e.coach, e.coach.WeakTopics(cmd.Context(), weakTopicCount))
		return nil
	},
}

func printStats(w io.Writer, c *coach.Coach, weak []store.TopicAccuracy) {
	p := c.Progress()
	sep := strings.Repeat("─", 44)

	fmt.Fprintf(w, "%s  (level %d)\n", p.Name, p.Level)
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "%-18s %d (%.0f%% into level, %d to next)\n",
		"XP", p.XP, progression.LevelProgress(p.XP), progression.XPToNextLevel(p.XP))
	fmt.Fprintf(w, "%-18s %d\n", "BrainCells", p.BrainCells)
	fmt.Fprintf(w, "%-18s %d\n", "Dark Matter", p.DarkMatter)
	fmt.Fprintf(w, "%-18s %d day(s)\n", "Streak", p.Stats.Streak)
	fmt.Fprintf(w, "%-18s %d/%d (%d%%)\n", "Answers",
		p.Stats.CorrectAnswers, p.Stats.TotalQuestions, p.Stats.Accuracy)
	fmt.Fprintf(w, "%-18s %dh\n", "Studied", p.Stats.HoursStudied())

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Oracle")
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "%-18s %d\n", "Predicted score", p.Oracle.PredictedScore)
	fmt.Fprintf(w, "%-18s %d\n", "Target score", p.Oracle.TargetScore)
	fmt.Fprintf(w, "%-18s %d%%\n", "Probability", p.Oracle.Probability)
	fmt.Fprintf(w, "%-18s %d\n", "Days left", p.Oracle.DaysLeft)

	if len(weak) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Weakest topics")
	fmt.Fprintln(w, sep)
	for _, t := range weak {
		fmt.Fprintf(w, "%-26s %3.0f%%  (%d/%d)\n", truncate(t.Topic, 26), t.Percent(), t.Correct, t.Total)
	}
}
