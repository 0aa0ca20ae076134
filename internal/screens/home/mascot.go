package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/synapse/internal/ui/theme"
)

// MascotVariant selects which neuron art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota
	MascotCelebrating               // streak of three days or more
	MascotAlert                     // vault is filling up
)

// AlertVaultSize is the active vault size that makes the mascot nervous.
const AlertVaultSize = 3

// CelebrateStreak is the streak length that makes the mascot cheer.
const CelebrateStreak = 3

const mascotIdle = `  \ | /
 ─( ◉◉ )─
  / | \`

const mascotCelebrating = ` * \ | / *
 ─( ★★ )─
  / | \`

const mascotAlert = `  \ | /   !
 ─( ◉◉ )─
  / | \`

// MascotFor picks the variant for the dashboard state. Alerts win over
// celebrations.
func MascotFor(streak, activeVault int) MascotVariant {
	switch {
	case activeVault >= AlertVaultSize:
		return MascotAlert
	case streak >= CelebrateStreak:
		return MascotCelebrating
	}
	return MascotIdle
}

// RenderMascot returns the colored art for v.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch v {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.BrainCell
	case MascotAlert:
		art, fg = mascotAlert, theme.Accent
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
