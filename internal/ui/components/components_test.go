package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

var (
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	up    = tea.KeyPressMsg{Code: tea.KeyUp}
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

func TestOptionList_SkipsEliminated(t *testing.T) {
	o := NewOptionList([]string{"-8", "-4", "4", "8"})
	o.Eliminated[1] = true
	o.Eliminated[2] = true

	o, _ = o.Update(down)
	if o.Cursor != 3 {
		t.Errorf("cursor = %d, want 3", o.Cursor)
	}
	o, _ = o.Update(down)
	if o.Cursor != 3 {
		t.Errorf("cursor moved past the last option: %d", o.Cursor)
	}
	o, _ = o.Update(up)
	if o.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", o.Cursor)
	}
}

func TestOptionList_FrozenWhenRevealed(t *testing.T) {
	o := NewOptionList([]string{"a", "b"})
	o.Revealed = true
	o, _ = o.Update(down)
	if o.Cursor != 0 {
		t.Errorf("revealed list should ignore keys, cursor = %d", o.Cursor)
	}
}

func TestOptionList_LetterIndex(t *testing.T) {
	o := NewOptionList([]string{"a", "b", "c", "d"})
	tests := []struct {
		key  string
		want int
	}{
		{"a", 0}, {"D", 3}, {"e", -1}, {"enter", -1}, {"1", -1},
	}
	for _, tt := range tests {
		if got := o.LetterIndex(tt.key); got != tt.want {
			t.Errorf("LetterIndex(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestOptionList_ViewMarksAnswer(t *testing.T) {
	o := NewOptionList([]string{"right", "wrong"})
	o.Selected = 1
	o.Revealed = true
	o.Correct = 0

	out := o.View(40)
	if !strings.Contains(out, "A)  right  ✓") || !strings.Contains(out, "B)  wrong  ✗") {
		t.Errorf("unexpected graded view:\n%s", out)
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	ran := ""
	action := func(name string) func() tea.Cmd {
		return func() tea.Cmd { ran = name; return nil }
	}
	m := NewMenu([]MenuItem{
		{Label: "Empty", Disabled: true},
		{Label: "Math", Action: action("math")},
		{Label: "Locked", Disabled: true},
		{Label: "Writing", Action: action("writing")},
	})
	if m.Selected != 1 {
		t.Fatalf("first enabled item should be selected, got %d", m.Selected)
	}

	m, _ = m.Update(down)
	if m.Selected != 3 {
		t.Errorf("selected = %d, want 3", m.Selected)
	}
	m.Update(enter)
	if ran != "writing" {
		t.Errorf("ran %q, want writing", ran)
	}
}

func TestProgressBar_Width(t *testing.T) {
	for _, pct := range []float64{-0.5, 0, 0.42, 1, 3} {
		bar := NewProgressBar("XP", pct, true, 40).View()
		if w := lipgloss.Width(bar); w != 40 {
			t.Errorf("percent %.2f: width = %d, want 40", pct, w)
		}
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct{ frame, want int }{
		{10, 20}, {80, 72}, {60, 54}, {200, 72},
	}
	for _, tt := range tests {
		if got := ContentWidth(tt.frame); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.frame, got, tt.want)
		}
	}
}
