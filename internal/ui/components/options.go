package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/synapse/internal/questionbank"
	"github.com/abhisek/synapse/internal/ui/theme"
)

// OptionList renders lettered answer options. Keyboard input moves the
// cursor; choosing and grading are left to the owning screen.
type OptionList struct {
	Options    []string
	Cursor     int
	Selected   int // -1 when nothing is chosen
	Eliminated map[int]bool

	// Revealed switches to graded colors using Correct.
	Revealed bool
	Correct  int
}

// NewOptionList creates an unanswered list.
func NewOptionList(options []string) OptionList {
	return OptionList{
		Options:    options,
		Selected:   -1,
		Eliminated: map[int]bool{},
	}
}

// Update handles up/down and j/k, skipping eliminated options.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Revealed {
		return o, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}
	switch kmsg.String() {
	case "up", "k":
		o.step(-1)
	case "down", "j":
		o.step(1)
	}
	return o, nil
}

func (o *OptionList) step(delta int) {
	for i := o.Cursor + delta; i >= 0 && i < len(o.Options); i += delta {
		if !o.Eliminated[i] {
			o.Cursor = i
			return
		}
	}
}

// LetterIndex maps an a-e key to an option index, or -1.
func (o OptionList) LetterIndex(key string) int {
	if len(key) != 1 {
		return -1
	}
	i := int(strings.ToLower(key)[0]) - 'a'
	if i < 0 || i >= len(o.Options) {
		return -1
	}
	return i
}

// View renders the options, one per line.
func (o OptionList) View(width int) string {
	var b strings.Builder
	for i, opt := range o.Options {
		marker := "  "
		if i == o.Cursor && !o.Revealed {
			marker = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", marker, questionbank.Letter(i), opt)

		var style lipgloss.Style
		switch {
		case o.Revealed && i == o.Correct:
			style = theme.Correct
			line += "  ✓"
		case o.Revealed && i == o.Selected:
			style = theme.Incorrect
			line += "  ✗"
		case o.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case o.Eliminated[i]:
			style = theme.Dimmed
		case i == o.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		case i == o.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Width(width).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
