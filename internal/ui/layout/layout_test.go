package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestSizeThresholds(t *testing.T) {
	tests := []struct {
		w, h              int
		tooSmall, compact bool
	}{
		{79, 40, true, true},
		{80, 24, false, true},
		{99, 40, false, true},
		{100, 29, false, true},
		{100, 30, false, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.tooSmall {
			t.Errorf("IsTooSmall(%d, %d) = %v", tt.w, tt.h, got)
		}
		if got := IsCompact(tt.w, tt.h); got != tt.compact {
			t.Errorf("IsCompact(%d, %d) = %v", tt.w, tt.h, got)
		}
	}
}

func TestRenderHUD(t *testing.T) {
	out := RenderHUD(HUD{Level: 4, BrainCells: 120, DarkMatter: 2, Streak: 5})
	for _, want := range []string{"LV 4", "🧠 120", "🌌 2", "🔥 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader("Arena", HUD{Level: 1, BrainCells: 100}, 120)
	if !strings.Contains(out, "SYNAPSE") || !strings.Contains(out, "Arena") {
		t.Errorf("header missing brand or title: %q", out)
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Home", HUD{Level: 1}, 100)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 100)
	out := RenderFrame(header, "body", footer, 100, 30)
	if h := lipgloss.Height(out); h != 30 {
		t.Errorf("frame height = %d, want 30", h)
	}
}
