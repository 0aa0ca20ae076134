// Package arena holds the arena screens: the lobby, the timed run and the
// results.
package arena

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/synapse/internal/coach"
	"github.com/abhisek/synapse/internal/questionbank"
	"github.com/abhisek/synapse/internal/router"
	"github.com/abhisek/synapse/internal/screen"
	"github.com/abhisek/synapse/internal/ui/components"
	"github.com/abhisek/synapse/internal/ui/layout"
	"github.com/abhisek/synapse/internal/ui/theme"
)

// LobbyScreen picks a category and whether to wager.
type LobbyScreen struct {
	coach  *coach.Coach
	menu   components.Menu
	wager  bool
	errMsg string
}

var _ screen.Screen = (*LobbyScreen)(nil)
var _ screen.KeyHintProvider = (*LobbyScreen)(nil)

// NewLobby creates the lobby. Categories without questions are disabled.
func NewLobby(c *coach.Coach) *LobbyScreen {
	l := &LobbyScreen{coach: c}
	var items []components.MenuItem
	for _, cat := range questionbank.Categories() {
		n := c.Bank().Count(cat)
		items = append(items, components.MenuItem{
			Label:    cat.DisplayName(),
			Detail:   fmt.Sprintf("%d questions", n),
			Disabled: n == 0,
			Action:   func() tea.Cmd { return l.start(cat) },
		})
	}
	l.menu = components.NewMenu(items)
	return l
}

func (l *LobbyScreen) start(cat questionbank.Category) tea.Cmd {
	run, err := l.coach.StartArena(cat, l.wager)
	if err != nil {
		l.errMsg = err.Error()
		return nil
	}
	l.errMsg = ""
	rs := NewRun(l.coach, run)
	return func() tea.Msg { return router.PushScreenMsg{Screen: rs} }
}

func (l *LobbyScreen) Init() tea.Cmd { return nil }

func (l *LobbyScreen) Title() string { return "Arena" }

func (l *LobbyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Category"},
		{Key: "W", Description: "Toggle wager"},
		{Key: "Enter", Description: "Battle"},
		{Key: "Esc", Description: "Back"},
	}
}

func (l *LobbyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "w" {
		l.wager = !l.wager
		return l, nil
	}
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LobbyScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	opts := l.coach.Config().Arena
	balance := l.coach.Progress().BrainCells

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Choose your battlefield"))
	b.WriteString("\n\n")
	b.WriteString(l.menu.View())
	b.WriteString("\n")

	rules := fmt.Sprintf("%d questions  ·  %s per question  ·  hint costs %d 🧠",
		opts.Questions, formatSeconds(opts.SecondsPerQuestion), opts.HintCost)
	b.WriteString(theme.Hint.Render(rules))
	b.WriteString("\n\n")

	wager := fmt.Sprintf("[ ] Wager %d 🧠 to double the rewards", opts.WagerCost)
	style := theme.Unselected
	if l.wager {
		wager = fmt.Sprintf("[x] Wager %d 🧠 to double the rewards", opts.WagerCost)
		style = lipgloss.NewStyle().Foreground(theme.BrainCell).Bold(true)
	}
	b.WriteString(style.Render(wager))
	b.WriteString(theme.Hint.Render(fmt.Sprintf("   balance %d", balance)))

	if l.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(l.errMsg))
	}
	return components.CabinetFrame(components.Card(b.String(), cw), width, height)
}

func formatSeconds(s int) string {
	if s%60 == 0 {
		return fmt.Sprintf("%dm", s/60)
	}
	if s > 60 {
		return fmt.Sprintf("%dm%02ds", s/60, s%60)
	}
	return fmt.Sprintf("%ds", s)
}
