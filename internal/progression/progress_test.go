package progression

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultProgress(t *testing.T) {
	p := DefaultProgress()
	if p.Level != 1 || p.XP != 0 {
		t.Errorf("level/xp = %d/%d, want 1/0", p.Level, p.XP)
	}
	if p.BrainCells != StarterBrainCells {
		t.Errorf("braincells = %d, want %d", p.BrainCells, StarterBrainCells)
	}
	want := Oracle{PredictedScore: 1000, TargetScore: 1500, Probability: 44, DaysLeft: 45}
	if diff := cmp.Diff(want, p.Oracle); diff != "" {
		t.Errorf("oracle mismatch (-want +got):\n%s", diff)
	}
}

func TestAddXP_LevelUp(t *testing.T) {
	p := DefaultProgress()
	change := p.AddXP(999)
	if change.LeveledUp() {
		t.Error("999 XP should not level up")
	}
	change = p.AddXP(1)
	if !change.LeveledUp() || change.From != 1 || change.To != 2 {
		t.Errorf("got change %+v, want 1 -> 2", change)
	}
	if p.Level != 2 {
		t.Errorf("level = %d, want 2", p.Level)
	}
}

func TestSpendBrainCells(t *testing.T) {
	p := DefaultProgress()
	p.BrainCells = 30

	if err := p.SpendBrainCells(25); err != nil {
		t.Fatalf("spend 25: %v", err)
	}
	if p.BrainCells != 5 {
		t.Errorf("balance = %d, want 5", p.BrainCells)
	}

	err := p.SpendBrainCells(10)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("got err %v, want ErrInsufficientFunds", err)
	}
	if p.BrainCells != 5 {
		t.Errorf("balance changed on failed spend: %d", p.BrainCells)
	}

	if err := p.SpendBrainCells(0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("got err %v, want ErrInvalidAmount", err)
	}
}

func TestRecordRun(t *testing.T) {
	p := DefaultProgress()
	p.RecordRun(4, 5)

	if p.Oracle.PredictedScore != 1240 {
		t.Errorf("predicted = %d, want 1240", p.Oracle.PredictedScore)
	}
	if p.Oracle.Probability != 71 {
		t.Errorf("probability = %d, want 71", p.Oracle.Probability)
	}
	wantStats := Stats{TotalQuestions: 5, CorrectAnswers: 4, Accuracy: 80}
	if diff := cmp.Diff(wantStats, p.Stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordRun_ZeroTotal(t *testing.T) {
	p := DefaultProgress()
	before := p
	p.RecordRun(0, 0)
	if diff := cmp.Diff(before, p); diff != "" {
		t.Errorf("zero-question run changed progress:\n%s", diff)
	}
}

func TestRecordActivity_Streak(t *testing.T) {
	p := DefaultProgress()
	day := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	p.RecordActivity(day, 10*time.Minute)
	if p.Stats.Streak != 1 {
		t.Fatalf("streak = %d, want 1", p.Stats.Streak)
	}
	p.RecordActivity(day.Add(2*time.Hour), 5*time.Minute)
	if p.Stats.Streak != 1 {
		t.Errorf("same day streak = %d, want 1", p.Stats.Streak)
	}
	p.RecordActivity(day.AddDate(0, 0, 1), time.Minute)
	if p.Stats.Streak != 2 {
		t.Errorf("next day streak = %d, want 2", p.Stats.Streak)
	}
	p.RecordActivity(day.AddDate(0, 0, 5), time.Minute)
	if p.Stats.Streak != 1 {
		t.Errorf("after gap streak = %d, want 1", p.Stats.Streak)
	}
	if p.Stats.StudySeconds != 17*60 {
		t.Errorf("study seconds = %d, want %d", p.Stats.StudySeconds, 17*60)
	}
}

func TestProgress_JSONRoundTrip(t *testing.T) {
	p := DefaultProgress()
	p.AddXP(4321)
	p.AddDarkMatter(3)
	p.RecordRun(3, 5)
	p.RecordActivity(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), time.Hour)

	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Progress
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(p, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
