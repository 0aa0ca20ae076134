// Package vault holds the Weakness Vault screens: the list of missed
// questions and the practice view.
package vault

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/synapse/internal/coach"
	"github.com/abhisek/synapse/internal/router"
	"github.com/abhisek/synapse/internal/screen"
	"github.com/abhisek/synapse/internal/ui/components"
	"github.com/abhisek/synapse/internal/ui/layout"
	"github.com/abhisek/synapse/internal/ui/theme"
	vlt "github.com/abhisek/synapse/internal/vault"
)

type vaultLoadedMsg struct {
	items []vlt.Item
	stats vlt.Stats
	err   error
}

// VaultScreen lists active vault items.
type VaultScreen struct {
	coach    *coach.Coach
	items    []vlt.Item
	stats    vlt.Stats
	selected int
	filter   string // topic filter, empty for all
	loaded   bool
	errMsg   string
	notice   string
	now      func() time.Time
}

var _ screen.Screen = (*VaultScreen)(nil)
var _ screen.KeyHintProvider = (*VaultScreen)(nil)

// New creates the vault list.
func New(c *coach.Coach) *VaultScreen {
	return &VaultScreen{coach: c, now: time.Now}
}

// Init loads the items matching the current filter and the vault stats.
func (v *VaultScreen) Init() tea.Cmd {
	vault, filter := v.coach.Vault(), v.filter
	return func() tea.Msg {
		ctx := context.Background()
		var items []vlt.Item
		var err error
		if filter == "" {
			items, err = vault.Active(ctx)
		} else {
			items, err = vault.ByTopic(ctx, filter)
		}
		if err != nil {
			return vaultLoadedMsg{err: err}
		}
		stats, err := vault.Stats(ctx)
		return vaultLoadedMsg{items: items, stats: stats, err: err}
	}
}

func (v *VaultScreen) Title() string { return "Weakness Vault" }

func (v *VaultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Train"},
		{Key: "F", Description: "Filter topic"},
		{Key: "M", Description: "Mark mastered"},
		{Key: "X", Description: "Remove"},
		{Key: "Esc", Description: "Back"},
	}
}

func (v *VaultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case vaultLoadedMsg:
		v.loaded = true
		if msg.err != nil {
			v.errMsg = msg.err.Error()
			return v, nil
		}
		v.errMsg = ""
		v.items, v.stats = msg.items, msg.stats
		v.selected = min(v.selected, max(len(v.items)-1, 0))
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
		case "f":
			v.filter = nextTopic(v.stats.TopicCounts, v.filter)
			v.selected = 0
			return v, v.Init()
		case "enter":
			if it, ok := v.current(); ok {
				p := NewPractice(v.coach, it)
				return v, func() tea.Msg { return router.PushScreenMsg{Screen: p} }
			}
		case "m":
			if it, ok := v.current(); ok {
				if _, err := v.coach.Vault().MarkMastered(context.Background(), it.Question.ID); err != nil {
					v.errMsg = err.Error()
					return v, nil
				}
				v.notice = "Weakness conquered!"
				return v, v.Init()
			}
		case "x":
			if it, ok := v.current(); ok {
				if _, err := v.coach.Vault().Remove(context.Background(), it.Question.ID); err != nil {
					v.errMsg = err.Error()
					return v, nil
				}
				v.notice = "Removed from the vault."
				return v, v.Init()
			}
		}
	}
	return v, nil
}

func (v *VaultScreen) current() (vlt.Item, bool) {
	if v.selected < 0 || v.selected >= len(v.items) {
		return vlt.Item{}, false
	}
	return v.items[v.selected], true
}

// nextTopic cycles "" → topics in order → "".
func nextTopic(counts map[string]int, current string) string {
	topics := make([]string, 0, len(counts))
	for t := range counts {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	if current == "" {
		if len(topics) == 0 {
			return ""
		}
		return topics[0]
	}
	for i, t := range topics {
		if t == current && i+1 < len(topics) {
			return topics[i+1]
		}
	}
	return ""
}

func (v *VaultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if v.errMsg != "" {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\nError: " + v.errMsg)
	}
	if !v.loaded {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Opening the vault...")
	}

	var b strings.Builder
	summary := fmt.Sprintf("%d active  ·  %d mastered", v.stats.Active, v.stats.Mastered)
	if v.stats.WeakestTopic != "" {
		summary += "  ·  weakest: " + v.stats.WeakestTopic
	}
	b.WriteString(theme.Subtitle.Width(cw).Render(summary))
	b.WriteString("\n")
	if v.filter != "" {
		b.WriteString(theme.Hint.Width(cw).Align(lipgloss.Center).Render("topic: " + v.filter))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(v.items) == 0 {
		b.WriteString(theme.Hint.Width(cw).Align(lipgloss.Center).
			Render("✨ No weaknesses yet! Keep battling in the Arena."))
	}
	now := v.now()
	for i, it := range v.items {
		prefix := "  "
		style := theme.Unselected
		if i == v.selected {
			prefix = "▸ "
			style = theme.Selected
		}
		progress := fmt.Sprintf("%d/%d", it.CorrectAttempts, vlt.MasteryThreshold)
		line := fmt.Sprintf("%s📌 %-18s %s", prefix, vlt.Truncate(it.Question.Topic, 18),
			vlt.Truncate(it.Question.Text, max(cw-48, 12)))
		b.WriteString(style.Render(line))
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  %s  %s", progress, vlt.RelativeTime(it.SavedAt, now))))
		b.WriteString("\n")
	}

	if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render(v.notice))
	}
	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}
