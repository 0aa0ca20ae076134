package app

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/synapse/internal/coach"
	"github.com/abhisek/synapse/internal/feedback"
	"github.com/abhisek/synapse/internal/pick"
	"github.com/abhisek/synapse/internal/questionbank"
	"github.com/abhisek/synapse/internal/router"
	senseiscreen "github.com/abhisek/synapse/internal/screens/sensei"
	"github.com/abhisek/synapse/internal/screens/stats"
	"github.com/abhisek/synapse/internal/store"
)

func newModel(t *testing.T) (AppModel, *coach.Coach) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open(fmt.Sprintf("file:app_%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	c := coach.New(context.Background(), st, questionbank.New(), feedback.NewEngine(pick.Seeded(1)), coach.DefaultConfig(), zap.NewNop())
	return New(c), c
}

var esc = tea.KeyPressMsg{Code: tea.KeyEscape}

func TestViewShowsHUD(t *testing.T) {
	m, c := newModel(t)
	c.AwardDarkMatter(context.Background(), 3)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	am := updated.(AppModel)

	if !am.View().AltScreen {
		t.Error("expected alt screen")
	}
	out := am.render()
	for _, want := range []string{"SYNAPSE", "LV 1", "100", "🌌 3", "Home"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in the frame", want)
		}
	}
}

func TestViewTooSmall(t *testing.T) {
	m, _ := newModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if !strings.Contains(updated.(AppModel).render(), "Terminal too small") {
		t.Error("expected the min size notice")
	}
}

func TestEscPopsScreen(t *testing.T) {
	m, c := newModel(t)
	m.router.Push(stats.New(c))

	_, cmd := m.Update(esc)
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestEscAtRootDoesNothing(t *testing.T) {
	m, _ := newModel(t)
	if _, cmd := m.Update(esc); cmd != nil {
		t.Error("expected no command at the root")
	}
}

func TestEscGoesToBackHandler(t *testing.T) {
	m, c := newModel(t)
	s, err := c.StartSensei("pythagorean")
	if err != nil {
		t.Fatalf("start sensei: %v", err)
	}
	m.router.Push(senseiscreen.NewChat(c, s))

	_, cmd := m.Update(esc)
	if cmd == nil {
		t.Fatal("expected the chat to handle Esc")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected the chat to swap in its evaluation")
	}
	if !s.Done() {
		t.Error("expected the session to end")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}
