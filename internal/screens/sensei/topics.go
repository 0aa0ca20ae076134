// Package sensei holds the teach-back screens: topic choice, the dialogue
// and its evaluation.
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

// TopicsScreen lists the dialogue topics.
type TopicsScreen struct {
	coach  *coach.Coach
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*TopicsScreen)(nil)
var _ screen.KeyHintProvider = (*TopicsScreen)(nil)

// NewTopics creates the topic picker.
func NewTopics(c *coach.Coach) *TopicsScreen {
	t := &TopicsScreen{coach: c}
	var items []components.MenuItem
	for _, topic := range sen.Topics() {
		items = append(items, components.MenuItem{
			Label:  topic.Icon + "  " + topic.Title,
			Detail: fmt.Sprintf("%d steps", topic.Steps()),
			Action: func() tea.Cmd { return t.open(topic.ID) },
		})
	}
	t.menu = components.NewMenu(items)
	return t
}

func (t *TopicsScreen) open(id string) tea.Cmd {
	s, err := t.coach.StartSensei(id)
	if err != nil {
		t.errMsg = err.Error()
		return nil
	}
	chat := NewChat(t.coach, s)
	return func() tea.Msg { return router.PushScreenMsg{Screen: chat} }
}

func (t *TopicsScreen) Init() tea.Cmd { return nil }

func (t *TopicsScreen) Title() string { return "Sensei" }

func (t *TopicsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Topic"},
		{Key: "Enter", Description: "Teach"},
		{Key: "Esc", Description: "Back"},
	}
}

func (t *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	t.menu, cmd = t.menu.Update(msg)
	return t, cmd
}

func (t *TopicsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Teach the Sensei"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render("The Sensei plays a confused student. Explain until it understands."))
	b.WriteString("\n\n")
	b.WriteString(t.menu.View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Grade A pays 150 XP and 2 🌌. Examples, reasons and steps count."))
	if t.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(t.errMsg))
	}
	return components.CabinetFrame(components.Card(b.String(), cw), width, height)
}
