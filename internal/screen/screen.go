// Package screen defines the contract every Synapse screen implements.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/synapse/internal/ui/layout"
)

// Screen is one page of the terminal app. The router owns a stack of them.
type Screen interface {
	// Init returns the command to run when the screen is pushed.
	Init() tea.Cmd

	// Update handles a message and returns the screen to keep on the stack.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area, excluding header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackHandler is implemented by screens that want Esc delivered to them
// instead of the app popping the stack, such as a running arena round or an
// open sensei dialogue.
type BackHandler interface {
	HandlesBack() bool
}
