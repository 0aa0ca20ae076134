package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/synapse/internal/questionbank"
	"github.com/abhisek/synapse/internal/sensei"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List sensei topics and question bank coverage",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()

		fmt.Fprintln(w, "Sensei topics")
		fmt.Fprintln(w, strings.Repeat("─", 56))
		for _, t := range sensei.Topics() {
			fmt.Fprintf(w, "%s %-22s %-28s %d steps\n", t.Icon, t.ID, t.Title, t.Steps())
		}

		bank := questionbank.New()
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Arena categories")
		fmt.Fprintln(w, strings.Repeat("─", 56))
		for _, c := range questionbank.Categories() {
			fmt.Fprintf(w, "%-10s %3d questions  %s\n",
				c.DisplayName(), bank.Count(c), strings.Join(bank.Topics(c), ", "))
		}
	},
}
