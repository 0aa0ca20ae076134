// Package theme holds the Synapse color palette and shared styles.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, neon on deep space
var (
	Primary   = lipgloss.Color("#22D3EE") // Cyan
	Secondary = lipgloss.Color("#A78BFA") // Violet
	Accent    = lipgloss.Color("#F472B6") // Pink
	Success   = lipgloss.Color("#34D399") // Emerald
	Warning   = lipgloss.Color("#FBBF24") // Amber
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1020") // Deep space
	BgCard    = lipgloss.Color("#1E293B") // Dark slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Currency colors
var (
	BrainCell  = lipgloss.Color("#FBBF24") // Gold
	DarkMatter = lipgloss.Color("#818CF8") // Indigo
	XP         = lipgloss.Color("#22D3EE") // Cyan
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Dimmed = lipgloss.NewStyle().
		Foreground(Border).
		Strikethrough(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Chat
var (
	SenseiLine = lipgloss.NewStyle().
			Foreground(Secondary)

	LearnerLine = lipgloss.NewStyle().
			Foreground(Text)
)

// GradeColor returns the display color for a sensei grade class.
func GradeColor(class string) lipgloss.Style {
	switch class {
	case "excellent":
		return lipgloss.NewStyle().Foreground(Success).Bold(true)
	case "good":
		return lipgloss.NewStyle().Foreground(Primary).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(Warning).Bold(true)
}
