package vault

import (
	"context"
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
	vlt "github.com/abhisek/synapse/internal/vault"
)

// PracticeScreen retries one vaulted question without a clock.
type PracticeScreen struct {
	coach   *coach.Coach
	item    vlt.Item
	options components.OptionList
	attempt *coach.VaultAttempt
	errMsg  string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// NewPractice creates the practice view for item.
func NewPractice(c *coach.Coach, item vlt.Item) *PracticeScreen {
	opts := components.NewOptionList(item.Question.Options)
	opts.Correct = item.Question.Correct
	return &PracticeScreen{coach: c, item: item, options: opts}
}

func (p *PracticeScreen) Init() tea.Cmd { return nil }

func (p *PracticeScreen) Title() string { return "Vault Training" }

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if p.attempt != nil {
		return []layout.KeyHint{{Key: "Enter", Description: "Back to vault"}}
	}
	return []layout.KeyHint{
		{Key: "A-D", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	key := kmsg.String()
	if p.attempt != nil {
		if key == "enter" {
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return p, nil
	}
	switch key {
	case "up", "down", "j", "k":
		p.options, _ = p.options.Update(msg)
	case "enter":
		p.answer(p.options.Cursor)
	default:
		if i := p.options.LetterIndex(key); i >= 0 {
			p.answer(i)
		}
	}
	return p, nil
}

func (p *PracticeScreen) answer(i int) {
	attempt, err := p.coach.PracticeVault(context.Background(), p.item.Question.ID, i)
	if err != nil {
		p.errMsg = err.Error()
		return
	}
	p.attempt = attempt
	p.options.Selected = i
	p.options.Revealed = true
}

func (p *PracticeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	q := p.item.Question

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%s  ·  missed with %s  ·  %d attempts",
		q.Topic, answerLabel(p.item.UserAnswer), p.item.Attempts)))
	b.WriteString("\n\n")
	if q.Passage != "" {
		b.WriteString(components.Card(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Width(cw-6).Render(q.Passage), cw))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw).Render(q.Text))
	b.WriteString("\n\n")
	b.WriteString(p.options.View(cw))

	if a := p.attempt; a != nil {
		b.WriteString("\n")
		head := theme.Incorrect.Render("✗ Not yet")
		if a.Correct {
			head = theme.Correct.Render(fmt.Sprintf("✓ Correct  +%d XP", ar.XPPerCorrect))
		}
		progress := theme.Hint.Render(fmt.Sprintf("  %d/%d toward mastery", a.Item.CorrectAttempts, vlt.MasteryThreshold))
		body := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(q.Explanation)
		if a.NewlyMastered {
			body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("🎉 Weakness conquered!")
		}
		b.WriteString(components.Card(head+progress+"\n"+body, cw))
	}
	if p.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(p.errMsg))
	}
	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

func answerLabel(i int) string {
	if i < 0 {
		return "no answer"
	}
	return questionbank.Letter(i)
}
