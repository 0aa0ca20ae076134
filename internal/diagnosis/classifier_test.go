package diagnosis

import (
	"slices"
	"testing"

	"github.com/abhisek/synapse/internal/pick"
)

func TestAdjacentClassifier(t *testing.T) {
	c := &AdjacentClassifier{}
	tests := []struct {
		correct, selected int
		want              Category
	}{
		{1, 0, CategoryCareless},
		{1, 2, CategoryCareless},
		{3, 0, ""},
		{2, 2, ""},
		{0, NoAnswer, CategoryCareless},
	}
	for _, tt := range tests {
		got := c.Classify(&ClassifyInput{CorrectIndex: tt.correct, SelectedIndex: tt.selected})
		if got != tt.want {
			t.Errorf("Classify(%d, %d) = %q, want %q", tt.correct, tt.selected, got, tt.want)
		}
	}
}

func TestTrapIndex(t *testing.T) {
	tests := []struct{ correct, want int }{
		{0, 1},
		{1, 0},
		{2, 1},
		{3, 2},
	}
	for _, tt := range tests {
		if got := TrapIndex(tt.correct); got != tt.want {
			t.Errorf("TrapIndex(%d) = %d, want %d", tt.correct, got, tt.want)
		}
	}
}

func TestTrapClassifier(t *testing.T) {
	c := &TrapClassifier{}
	if got := c.Classify(&ClassifyInput{CorrectIndex: 2, SelectedIndex: 1}); got != CategoryTrap {
		t.Errorf("got %q, want %q", got, CategoryTrap)
	}
	if got := c.Classify(&ClassifyInput{CorrectIndex: 2, SelectedIndex: 0}); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestRunClassifiers_AdjacentPriority(t *testing.T) {
	// correct=2, selected=1 satisfies both rules; adjacency is checked first.
	cat, name := RunClassifiers(DefaultClassifiers(), &ClassifyInput{CorrectIndex: 2, SelectedIndex: 1})
	if cat != CategoryCareless {
		t.Errorf("got category %q, want %q", cat, CategoryCareless)
	}
	if name != "adjacent" {
		t.Errorf("got classifier %q, want %q", name, "adjacent")
	}
}

func TestRunClassifiers_TrapOnlyChain(t *testing.T) {
	cat, name := RunClassifiers([]Classifier{&TrapClassifier{}}, &ClassifyInput{CorrectIndex: 2, SelectedIndex: 1})
	if cat != CategoryTrap || name != "trap" {
		t.Errorf("got (%q, %q), want (trap, trap)", cat, name)
	}
}

func TestRunClassifiers_NoMatch(t *testing.T) {
	cat, name := RunClassifiers(DefaultClassifiers(), &ClassifyInput{CorrectIndex: 3, SelectedIndex: 0})
	if cat != "" || name != "" {
		t.Errorf("got (%q, %q), want empty", cat, name)
	}
}

func TestDiagnose(t *testing.T) {
	d := NewDiagnoser(pick.Seeded(1))
	tests := []struct {
		correct, selected int
		want              Category
	}{
		{1, 0, CategoryCareless},
		{2, 1, CategoryCareless},
		{3, 0, CategoryConceptual},
		{0, 3, CategoryConceptual},
		{3, NoAnswer, CategoryConceptual},
	}
	for _, tt := range tests {
		r := d.Diagnose(tt.correct, tt.selected)
		if r.Category != tt.want {
			t.Errorf("Diagnose(%d, %d) = %q, want %q", tt.correct, tt.selected, r.Category, tt.want)
		}
		if !slices.Contains(Lookup(tt.want).Responses, r.Response) {
			t.Errorf("response %q not in %q pool", r.Response, tt.want)
		}
	}
}

func TestDiagnose_DeterministicResponse(t *testing.T) {
	d := NewDiagnoser(&pick.Fixed{Seq: []int{2}})
	r := d.Diagnose(3, 0)
	want := "This isn't about calculation - it's about understanding."
	if r.Response != want {
		t.Errorf("got %q, want %q", r.Response, want)
	}
	if r.ClassifierName != "default" {
		t.Errorf("got classifier %q, want default", r.ClassifierName)
	}
}

func TestMistakeTypes_Complete(t *testing.T) {
	for _, c := range []Category{CategoryConceptual, CategoryProcedural, CategoryCareless, CategoryMisread, CategoryTrap} {
		m := Lookup(c)
		if m == nil {
			t.Errorf("no mistake type for %q", c)
			continue
		}
		if len(m.Responses) != 3 {
			t.Errorf("%q has %d responses, want 3", c, len(m.Responses))
		}
		if m.Name == "" || m.Description == "" {
			t.Errorf("%q missing name or description", c)
		}
	}
	if got := len(AllMistakeTypes()); got != 5 {
		t.Errorf("got %d mistake types, want 5", got)
	}
}
