package home

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/synapse/internal/progression"
	"github.com/abhisek/synapse/internal/ui/components"
	"github.com/abhisek/synapse/internal/ui/theme"
	"github.com/abhisek/synapse/internal/vault"
)

const titleFull = `███████╗██╗   ██╗███╗   ██╗ █████╗ ██████╗ ███████╗███████╗
██╔════╝╚██╗ ██╔╝████╗  ██║██╔══██╗██╔══██╗██╔════╝██╔════╝
███████╗ ╚████╔╝ ██╔██╗ ██║███████║██████╔╝███████╗█████╗
╚════██║  ╚██╔╝  ██║╚██╗██║██╔══██║██╔═══╝ ╚════██║██╔══╝
███████║   ██║   ██║ ╚████║██║  ██║██║     ███████║███████╗
╚══════╝   ╚═╝   ╚═╝  ╚═══╝╚═╝  ╚═╝╚═╝     ╚══════╝╚══════╝`

const titleCompact = "S · Y · N · A · P · S · E"

// buttonWidth is the fixed width of menu buttons.
const buttonWidth = 24

func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact || cw < lipgloss.Width(titleFull) {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(art))
}

// renderLevelCard shows the level, the XP bar toward the next level and the
// currencies.
func renderLevelCard(p progression.Progress, cw int) string {
	head := fmt.Sprintf("Level %d  ·  %d XP  ·  %d to next", p.Level, p.XP, progression.XPToNextLevel(p.XP))
	bar := components.NewProgressBar("", progression.LevelProgress(p.XP), true, cw-6)
	bar.Fill = theme.XP
	return components.TitledCard(p.Name, theme.Body.Render(head)+"\n"+bar.View(), cw)
}

// renderOracle shows the projected score against the target.
func renderOracle(o progression.Oracle, cw int) string {
	prob := lipgloss.NewStyle().Bold(true)
	switch {
	case o.Probability >= 70:
		prob = prob.Foreground(theme.Success)
	case o.Probability >= 40:
		prob = prob.Foreground(theme.Warning)
	default:
		prob = prob.Foreground(theme.Error)
	}
	line := fmt.Sprintf("Predicted %s  ·  Target %d  ·  %s on track  ·  %d days left",
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprint(o.PredictedScore)),
		o.TargetScore,
		prob.Render(fmt.Sprintf("%d%%", o.Probability)),
		o.DaysLeft,
	)
	return components.TitledCard("Oracle", line, cw)
}

// renderRecentVault lists the newest vault items, or an encouraging note
// when the vault is empty.
func renderRecentVault(items []vault.Item, now time.Time, cw int) string {
	if len(items) == 0 {
		return components.TitledCard("Weakness Vault",
			theme.Hint.Render("✨ No weaknesses yet! Keep battling in the Arena."), cw)
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		topic := lipgloss.NewStyle().Foreground(theme.Accent).Render(it.Question.Topic)
		when := theme.Hint.Render(vault.RelativeTime(it.SavedAt, now))
		text := vault.Truncate(it.Question.Text, max(cw-lipgloss.Width(it.Question.Topic)-20, 10))
		lines = append(lines, fmt.Sprintf("📌 %s  %s  %s", topic, text, when))
	}
	return components.TitledCard("Weakness Vault", strings.Join(lines, "\n"), cw)
}

func renderMenu(labels []string, selected int, cw int, compact bool) string {
	var rows []string
	for i, label := range labels {
		if compact {
			style := theme.Unselected
			prefix := "   "
			if i == selected {
				style = lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Primary).Bold(true)
				prefix = " ▸ "
			}
			rows = append(rows, style.Render(prefix+label+" "))
			continue
		}
		rows = append(rows, components.ArcadeButton(label, i == selected, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(rows, "\n"))
}
