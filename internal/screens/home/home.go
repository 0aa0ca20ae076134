// Package home is the Synapse dashboard: level, Oracle, recent vault items
// and the main menu.
package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/synapse/internal/coach"
	"github.com/abhisek/synapse/internal/router"
	"github.com/abhisek/synapse/internal/screen"
	arenascreen "github.com/abhisek/synapse/internal/screens/arena"
	senseiscreen "github.com/abhisek/synapse/internal/screens/sensei"
	"github.com/abhisek/synapse/internal/screens/stats"
	vaultscreen "github.com/abhisek/synapse/internal/screens/vault"
	"github.com/abhisek/synapse/internal/ui/components"
	"github.com/abhisek/synapse/internal/ui/layout"
	"github.com/abhisek/synapse/internal/ui/theme"
	"github.com/abhisek/synapse/internal/vault"
)

// dashboardMsg carries the vault data loaded on Init.
type dashboardMsg struct {
	recent []vault.Item
	active int
	err    error
}

// HomeScreen is the root screen.
type HomeScreen struct {
	coach  *coach.Coach
	menu   components.Menu
	labels []string

	recent  []vault.Item
	active  int
	loadErr error
	now     func() time.Time
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the dashboard for c.
func New(c *coach.Coach) *HomeScreen {
	push := func(s func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: s()} }
		}
	}

	labels := []string{"ARENA", "SENSEI", "WEAKNESS VAULT", "STATS", "EXIT"}
	items := []components.MenuItem{
		{Label: labels[0], Action: push(func() screen.Screen { return arenascreen.NewLobby(c) })},
		{Label: labels[1], Action: push(func() screen.Screen { return senseiscreen.NewTopics(c) })},
		{Label: labels[2], Action: push(func() screen.Screen { return vaultscreen.New(c) })},
		{Label: labels[3], Action: push(func() screen.Screen { return stats.New(c) })},
		{Label: labels[4], Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		coach:  c,
		menu:   components.NewMenu(items),
		labels: labels,
		now:    time.Now,
	}
}

// Init reloads the vault summary. The router calls it again whenever the
// dashboard is uncovered.
func (h *HomeScreen) Init() tea.Cmd {
	v := h.coach.Vault()
	return func() tea.Msg {
		ctx := context.Background()
		recent, err := v.Recent(ctx, vault.DefaultRecent)
		if err != nil {
			return dashboardMsg{err: err}
		}
		n, err := v.Count(ctx)
		return dashboardMsg{recent: recent, active: n, err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(dashboardMsg); ok {
		h.recent, h.active, h.loadErr = m.recent, m.active, m.err
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back the header and footer boxes.
	compact := layout.IsCompact(width, height+6)
	cw := components.ContentWidth(width)
	p := h.coach.Progress()

	if compact {
		sections := []string{
			renderTitle(cw, true),
			renderLevelCard(p, cw),
			renderMenu(h.labels, h.menu.Selected, cw, true),
		}
		return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
	}

	cardWidth := cw - buttonWidth - 4
	cards := lipgloss.JoinVertical(lipgloss.Left,
		renderLevelCard(p, cardWidth),
		renderOracle(p.Oracle, cardWidth),
		renderRecentVault(h.recent, h.now(), cardWidth),
	)
	left := lipgloss.JoinVertical(lipgloss.Center,
		RenderMascot(MascotFor(p.Stats.Streak, h.active)),
		"",
		renderMenu(h.labels, h.menu.Selected, buttonWidth+2, false),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", cards)

	content := renderTitle(cw, false) + "\n\n" + body
	if h.loadErr != nil {
		content += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("vault unavailable: "+h.loadErr.Error())
	}
	return components.CabinetFrame(content, width, height)
}
