package arena

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	ar "github.com/abhisek/synapse/internal/arena"
	"github.com/abhisek/synapse/internal/coach"
	"github.com/abhisek/synapse/internal/questionbank"
	"github.com/abhisek/synapse/internal/router"
	"github.com/abhisek/synapse/internal/screen"
	"github.com/abhisek/synapse/internal/ui/components"
	"github.com/abhisek/synapse/internal/ui/layout"
	"github.com/abhisek/synapse/internal/ui/theme"
)

// ResultsScreen summarizes a settled run.
type ResultsScreen struct {
	run     *ar.Run
	outcome coach.ArenaOutcome
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// NewResults creates the results screen.
func NewResults(run *ar.Run, outcome coach.ArenaOutcome) *ResultsScreen {
	return &ResultsScreen{run: run, outcome: outcome}
}

func (r *ResultsScreen) Init() tea.Cmd { return nil }

func (r *ResultsScreen) Title() string { return "Arena Results" }

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return r, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	res := r.outcome.Results
	cw := components.ContentWidth(width)
	center := func(s string) string { return lipgloss.PlaceHorizontal(cw, lipgloss.Center, s) }

	var b strings.Builder
	b.WriteString(center(theme.Title.Render(res.Icon + "  " + res.Title)))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Body.Render(fmt.Sprintf(
		"%d/%d correct  ·  %d%% accuracy  ·  %s", res.Correct, res.Total, res.Accuracy, res.Duration))))
	b.WriteString("\n\n")

	rewards := lipgloss.NewStyle().Foreground(theme.XP).Bold(true).Render(fmt.Sprintf("+%d XP", res.XP)) +
		"    " +
		lipgloss.NewStyle().Foreground(theme.BrainCell).Bold(true).Render(fmt.Sprintf("+%d 🧠", res.BrainCells))
	if res.Wagered {
		rewards += theme.Hint.Render("    wager doubled")
	}
	b.WriteString(center(rewards))
	b.WriteString("\n")

	if r.outcome.Level.LeveledUp() {
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(
			fmt.Sprintf("⬆ LEVEL UP! %d → %d", r.outcome.Level.From, r.outcome.Level.To))))
		b.WriteString("\n")
	}

	var review []string
	for _, a := range r.run.Answers {
		mark := theme.Correct.Render("✓")
		if !a.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		picked := "no answer"
		if a.Selected >= 0 {
			picked = questionbank.Letter(a.Selected)
		}
		review = append(review, fmt.Sprintf("%s  %-20s  %s  %s", mark, a.Question.Topic,
			theme.Hint.Render("picked "+picked), theme.Hint.Render("answer "+questionbank.Letter(a.Question.Correct))))
	}
	if len(review) > 0 {
		b.WriteString("\n")
		b.WriteString(components.TitledCard("Review", strings.Join(review, "\n"), cw))
	}
	if r.outcome.Vaulted > 0 {
		b.WriteString("\n")
		b.WriteString(center(theme.Hint.Render(fmt.Sprintf("📥 %d saved to the Weakness Vault", r.outcome.Vaulted))))
	}
	if r.run.HintsUsed > 0 {
		b.WriteString("\n")
		b.WriteString(center(theme.Hint.Render(fmt.Sprintf("%d hints used", r.run.HintsUsed))))
	}

	return components.CabinetFrame(b.String(), width, height)
}
