package sensei

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/synapse/internal/coach"
	"github.com/abhisek/synapse/internal/router"
	"github.com/abhisek/synapse/internal/screen"
	sen "github.com/abhisek/synapse/internal/sensei"
	"github.com/abhisek/synapse/internal/ui/components"
	"github.com/abhisek/synapse/internal/ui/layout"
	"github.com/abhisek/synapse/internal/ui/theme"
)

// EvaluationScreen shows the grade, rewards and the comprehension log.
type EvaluationScreen struct {
	session *sen.Session
	outcome coach.SenseiOutcome
	log     []sen.LogEntry
}

var _ screen.Screen = (*EvaluationScreen)(nil)
var _ screen.KeyHintProvider = (*EvaluationScreen)(nil)

// NewEvaluation creates the evaluation screen for a finished session.
func NewEvaluation(s *sen.Session, outcome coach.SenseiOutcome) *EvaluationScreen {
	return &EvaluationScreen{
		session: s,
		outcome: outcome,
		log:     sen.ComprehensionLog(s.Transcript),
	}
}

func (e *EvaluationScreen) Init() tea.Cmd { return nil }

func (e *EvaluationScreen) Title() string { return "Sensei Evaluation" }

func (e *EvaluationScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Home"}}
}

func (e *EvaluationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return e, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return e, nil
}

func (e *EvaluationScreen) View(width, height int) string {
	ev := e.outcome.Evaluation
	cw := components.ContentWidth(width)
	center := func(s string) string { return lipgloss.PlaceHorizontal(cw, lipgloss.Center, s) }

	var b strings.Builder
	b.WriteString(center(theme.GradeColor(ev.Class).Render("GRADE " + string(ev.Grade))))
	b.WriteString("\n")
	b.WriteString(center(theme.Hint.Render(fmt.Sprintf("%.0f%%  ·  %d of %d points  ·  %d/%d steps",
		ev.Percentage, ev.TotalScore, ev.MaxPossible, e.session.Step, e.session.Topic.Steps()))))
	b.WriteString("\n\n")

	if e.outcome.Repeat {
		b.WriteString(center(theme.Hint.Render("Already rewarded")))
	} else {
		b.WriteString(center(
			lipgloss.NewStyle().Foreground(theme.XP).Bold(true).Render(fmt.Sprintf("+%d XP", ev.XP)) + "    " +
				lipgloss.NewStyle().Foreground(theme.DarkMatter).Bold(true).Render(fmt.Sprintf("+%d 🌌", ev.DarkMatter))))
	}
	b.WriteString("\n")
	if e.outcome.Level.LeveledUp() {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(
			fmt.Sprintf("⬆ LEVEL UP! %d → %d", e.outcome.Level.From, e.outcome.Level.To))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	scores := fmt.Sprintf("Clarity %d  ·  Depth %d  ·  Engagement %d",
		ev.Scores.Clarity, ev.Scores.Depth, ev.Scores.Engagement)
	feedback := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(ev.Feedback)
	b.WriteString(components.TitledCard("Feedback", theme.Hint.Render(scores)+"\n"+feedback, cw))
	b.WriteString("\n")

	if len(e.log) > 0 {
		var lines []string
		for _, entry := range e.log {
			if entry.Kind == sen.LogSuccess {
				lines = append(lines, theme.Correct.Render("✓ ")+theme.Body.Render(entry.Text))
			} else {
				lines = append(lines, lipgloss.NewStyle().Foreground(theme.Warning).Render("⚠ ")+theme.Body.Render(entry.Text))
			}
		}
		b.WriteString(components.TitledCard("Comprehension log", strings.Join(lines, "\n"), cw))
	}

	return components.CabinetFrame(b.String(), width, height)
}
