package home

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
	arenascreen "github.com/abhisek/synapse/internal/screens/arena"
	senseiscreen "github.com/abhisek/synapse/internal/screens/sensei"
	"github.com/abhisek/synapse/internal/store"
)

func newCoach(t *testing.T) *coach.Coach {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open(fmt.Sprintf("file:homescreen_%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return coach.New(context.Background(), st, questionbank.New(), feedback.NewEngine(pick.Seeded(1)), coach.DefaultConfig(), zap.NewNop())
}

func TestInitLoadsVault(t *testing.T) {
	c := newCoach(t)
	q := c.Bank().All(questionbank.CategoryMath)[0]
	if _, err := c.Vault().Save(context.Background(), q, (q.Correct+1)%len(q.Options)); err != nil {
		t.Fatalf("save: %v", err)
	}

	h := New(c)
	h.Update(h.Init()())

	if h.active != 1 || len(h.recent) != 1 {
		t.Fatalf("got active=%d recent=%d, want 1/1", h.active, len(h.recent))
	}
	if out := h.View(120, 34); !strings.Contains(out, q.Topic) {
		t.Errorf("dashboard should list the vaulted topic %q", q.Topic)
	}
}

func TestEmptyVaultNote(t *testing.T) {
	h := New(newCoach(t))
	h.Update(h.Init()())

	if out := h.View(120, 34); !strings.Contains(out, "No weaknesses yet") {
		t.Error("expected empty vault note")
	}
}

func TestMenuPushesScreens(t *testing.T) {
	tests := []struct {
		downs int
		check func(msg tea.Msg) bool
	}{
		{0, func(msg tea.Msg) bool {
			p, ok := msg.(router.PushScreenMsg)
			_, lobby := p.Screen.(*arenascreen.LobbyScreen)
			return ok && lobby
		}},
		{1, func(msg tea.Msg) bool {
			p, ok := msg.(router.PushScreenMsg)
			_, topics := p.Screen.(*senseiscreen.TopicsScreen)
			return ok && topics
		}},
		{4, func(msg tea.Msg) bool {
			_, ok := msg.(tea.QuitMsg)
			return ok
		}},
	}
	for _, tt := range tests {
		h := New(newCoach(t))
		for range tt.downs {
			h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		}
		_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		if cmd == nil {
			t.Fatalf("item %d: expected a command", tt.downs)
		}
		if msg := cmd(); !tt.check(msg) {
			t.Errorf("item %d: unexpected message %T", tt.downs, msg)
		}
	}
}

func TestMascotFor(t *testing.T) {
	if got := MascotFor(0, AlertVaultSize); got == MascotFor(0, 0) {
		t.Error("a full vault should change the mascot")
	}
	if got := MascotFor(CelebrateStreak, 0); got == MascotFor(0, 0) {
		t.Error("a long streak should change the mascot")
	}
}
