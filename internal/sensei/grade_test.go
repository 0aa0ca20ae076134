package sensei

import (
	"math"
	"testing"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name       string
		total, max int
		satisfied  bool
		want       float64
	}{
		{"plain ratio", 17, 34, false, 50},
		{"satisfied bonus", 17, 34, true, 90},
		{"capped after bonus", 30, 34, true, 100},
		{"raw overshoot capped", 26, 17, false, 100},
		{"zero max", 5, 0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentage(tt.total, tt.max, tt.satisfied)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		pct       float64
		satisfied bool
		want      Grade
	}{
		{85, false, GradeA},
		{84.9, false, GradeB},
		{70, false, GradeB},
		{69.9, false, GradeC},
		{50, false, GradeC},
		{49.9, false, GradeD},
		{0, false, GradeD},
		{0, true, GradeA},
	}
	for _, tt := range tests {
		if got := TierFor(tt.pct, tt.satisfied).Grade; got != tt.want {
			t.Errorf("TierFor(%v, %v) = %s, want %s", tt.pct, tt.satisfied, got, tt.want)
		}
	}
}

func TestTierRewards(t *testing.T) {
	want := map[Grade][2]int{
		GradeA: {150, 2},
		GradeB: {100, 1},
		GradeC: {50, 0},
		GradeD: {25, 0},
	}
	for _, tier := range tiers {
		w := want[tier.Grade]
		if tier.XP != w[0] || tier.DarkMatter != w[1] {
			t.Errorf("grade %s rewards = (%d, %d), want (%d, %d)", tier.Grade, tier.XP, tier.DarkMatter, w[0], w[1])
		}
		if tier.Feedback == "" {
			t.Errorf("grade %s has no feedback", tier.Grade)
		}
	}
}

func TestEvaluate_OvershootIsKept(t *testing.T) {
	topic, _ := LookupTopic("quadratic")
	s := &Session{Topic: topic, Scores: Scores{Clarity: 10, Depth: 10, Engagement: 10}}
	ev := Evaluate(s)
	if ev.TotalScore <= ev.MaxPossible {
		t.Fatalf("expected raw total %d above max %d", ev.TotalScore, ev.MaxPossible)
	}
	if ev.Percentage != 100 || ev.Grade != GradeA {
		t.Errorf("got %.1f%% grade %s, want 100%% grade A", ev.Percentage, ev.Grade)
	}
}

func TestEvaluate_MaxPossibleScalesWithSteps(t *testing.T) {
	topic, _ := LookupTopic("semicolons")
	s := &Session{Topic: topic, Step: 2, Scores: Scores{Clarity: 9, Depth: 9, Engagement: 9}}
	ev := Evaluate(s)
	if ev.MaxPossible != 45 {
		t.Errorf("max possible = %d, want 45", ev.MaxPossible)
	}
	if math.Abs(ev.Percentage-60) > 1e-9 || ev.Grade != GradeC {
		t.Errorf("got %.2f%% grade %s, want 60%% grade C", ev.Percentage, ev.Grade)
	}
}
