package sensei

import (
	"testing"

	"github.com/abhisek/synapse/internal/feedback"
	"github.com/abhisek/synapse/internal/pick"
	"github.com/google/go-cmp/cmp"
)

func TestQuality(t *testing.T) {
	long := "For example, first we move every term to one side, then we look for two numbers that multiply to the constant " +
		"and add to the middle coefficient, because that is exactly what factoring undoes when you expand it."
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"reasoning", "because it balances", 2},
		{"example and reasoning", "For example, it works because both sides match", 4},
		{"reasoning and steps", "It works because the terms cancel, then it balances", 3},
		{"long with every indicator", long, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quality(tt.text); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAssess(t *testing.T) {
	e := feedback.NewEngine(&pick.Fixed{Seq: []int{0}})

	a := Assess(e, "For example, it works because both sides match", 0)
	if a.Kind != AssessAccept {
		t.Fatalf("kind = %s, want accept", a.Kind)
	}
	want := "Oh! Now THAT makes sense. The way you broke it down with that concrete example really clicked."
	if a.Response != want {
		t.Errorf("got %q, want %q", a.Response, want)
	}

	threeish := "It works because the terms cancel, then it balances"
	if got := Assess(e, threeish, 1).Kind; got != AssessProbe {
		t.Errorf("quality 3 at stage 1: kind = %s, want probe", got)
	}
	a = Assess(e, threeish, 2)
	if a.Kind != AssessAccept {
		t.Errorf("quality 3 at stage 2: kind = %s, want accept", a.Kind)
	}
	if want := `Oh! Now THAT makes sense. The way you broke it down with connecting the "why" really clicked.`; a.Response != want {
		t.Errorf("got %q, want %q", a.Response, want)
	}

	a = Assess(e, "ok", 5)
	if a.Kind != AssessResist || a.Quality != 0 {
		t.Errorf("got %+v, want resist with quality 0", a)
	}
	if a.Response != "I'm not convinced. That explanation has gaps I can poke through." {
		t.Errorf("unexpected resist line %q", a.Response)
	}
}

func TestComprehensionLog(t *testing.T) {
	transcript := []Message{
		{SenderSensei, "What is a quadratic?"},
		{SenderLearner, "For example, suppose we factor it because it is easier to see the roots that way"},
		{SenderLearner, "just use the formula"},
	}
	got := ComprehensionLog(transcript)
	want := []LogEntry{
		{LogSuccess, "User provided a concrete example. Understanding improved."},
		{LogSuccess, "User explained the reasoning, not just the steps."},
		{LogWarning, "Response was brief. I needed more detail to fully grasp it."},
		{LogWarning, "User used vague qualifiers. Deeper explanation needed."},
		{LogWarning, "User stated a rule without explaining why it works."},
		{LogSuccess, "Overall: Explanation was methodical and clear. Mastery demonstrated."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestComprehensionLog_IgnoresSenseiLines(t *testing.T) {
	got := ComprehensionLog([]Message{{SenderSensei, "because example"}})
	if len(got) != 0 {
		t.Errorf("got %d entries, want 0", len(got))
	}
}
