package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/synapse/internal/ui/theme"
)

// ChatCharLimit caps a single learner message.
const ChatCharLimit = 500

// ChatInput wraps bubbles/textinput for the sensei dialogue.
type ChatInput struct {
	Model textinput.Model
}

// NewChatInput creates a focused input.
func NewChatInput(placeholder string, width int) ChatInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = ChatCharLimit
	ti.Prompt = "› "
	if width > 0 {
		ti.SetWidth(width)
	}
	ti.Focus()
	return ChatInput{Model: ti}
}

// Init returns the cursor blink command.
func (c ChatInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the wrapped input.
func (c ChatInput) Update(msg tea.Msg) (ChatInput, tea.Cmd) {
	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// View renders the input inside a rounded box.
func (c ChatInput) View(width int) string {
	border := theme.Border
	if c.Model.Focused() {
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width).
		Render(c.Model.View())
}

// Value returns the trimmed input.
func (c ChatInput) Value() string {
	return strings.TrimSpace(c.Model.Value())
}

// Reset clears the input.
func (c *ChatInput) Reset() {
	c.Model.Reset()
}

// Blur stops accepting keys.
func (c *ChatInput) Blur() {
	c.Model.Blur()
}
