package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/synapse/internal/screen"
)

type stubScreen struct {
	title   string
	inits   int
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func stack(titles ...string) (*Router, []*stubScreen) {
	screens := make([]*stubScreen, len(titles))
	for i, t := range titles {
		screens[i] = &stubScreen{title: t}
	}
	r := New(screens[0])
	for _, s := range screens[1:] {
		r.Push(s)
	}
	return r, screens
}

func TestPushRunsInit(t *testing.T) {
	r, screens := stack("home", "arena")

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "arena" {
		t.Errorf("expected active 'arena', got %q", r.Active().Title())
	}
	if screens[1].inits != 1 {
		t.Errorf("expected Init once on pushed screen, got %d", screens[1].inits)
	}
	if screens[0].inits != 0 {
		t.Error("expected root Init to be left to the app")
	}
}

func TestPopStopsAtRoot(t *testing.T) {
	r, screens := stack("home", "arena")

	r.Pop()
	r.Pop()

	if screens[0].inits != 1 {
		t.Errorf("expected uncovered screen to re-run Init once, got %d", screens[0].inits)
	}
	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r, _ := stack("home", "arena")
	results := &stubScreen{title: "results"}

	r.Update(ReplaceScreenMsg{Screen: results})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "results" {
		t.Errorf("expected active 'results', got %q", r.Active().Title())
	}
	if results.inits != 1 {
		t.Error("expected Init to run on replacement")
	}
}

func TestPopToRoot(t *testing.T) {
	r, _ := stack("home", "vault", "practice")

	r.Update(PopToRootMsg{})

	if r.Depth() != 1 || r.Active().Title() != "home" {
		t.Errorf("expected only 'home' left, got depth %d active %q", r.Depth(), r.Active().Title())
	}
}

func TestNavigationMessages(t *testing.T) {
	r, screens := stack("home")
	next := &stubScreen{title: "stats"}

	r.Update(PushScreenMsg{Screen: next})
	if r.Active() != next {
		t.Fatalf("expected pushed screen active")
	}
	r.Update(PopScreenMsg{})
	if r.Active() != screens[0] {
		t.Fatalf("expected root active after pop")
	}
	if screens[0].updates != 0 {
		t.Error("navigation messages must not reach screens")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	r, screens := stack("home", "sensei")

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if screens[1].updates != 1 {
		t.Errorf("expected active screen to get 1 update, got %d", screens[1].updates)
	}
	if screens[0].updates != 0 {
		t.Error("screens below the top must not get updates")
	}
	if got := r.View(80, 24); got != "sensei" {
		t.Errorf("expected view of active screen, got %q", got)
	}
}
