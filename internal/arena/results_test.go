package arena

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestResultsFor(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		wagered bool
		want    Results
	}{
		{"perfect", 5, 5, false, Results{Accuracy: 100, XP: 150, BrainCells: 90, Title: "Perfect Score!"}},
		{"perfect wagered", 5, 5, true, Results{Accuracy: 100, XP: 300, BrainCells: 180, Title: "Perfect Score!"}},
		{"excellent", 4, 5, false, Results{Accuracy: 80, XP: 85, BrainCells: 55, Title: "Excellent Work!"}},
		{"good", 3, 5, false, Results{Accuracy: 60, XP: 45, BrainCells: 30, Title: "Good Effort!"}},
		{"keep practicing", 1, 5, false, Results{Accuracy: 20, XP: 15, BrainCells: 10, Title: "Keep Practicing!"}},
		{"rounded", 2, 3, false, Results{Accuracy: 67, XP: 30, BrainCells: 20, Title: "Good Effort!"}},
		{"empty", 0, 0, false, Results{Title: "Keep Practicing!"}},
	}
	ignore := cmpopts.IgnoreFields(Results{}, "Correct", "Total", "Wagered", "Icon", "Duration", "Hints")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResultsFor(tt.correct, tt.total, tt.wagered)
			if diff := cmp.Diff(tt.want, got, ignore); diff != "" {
				t.Errorf("ResultsFor mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatting(t *testing.T) {
	if got := FormatDuration(125); got != "2:05" {
		t.Errorf("FormatDuration(125) = %q, want %q", got, "2:05")
	}
	if got := FormatClock(90); got != "01:30" {
		t.Errorf("FormatClock(90) = %q, want %q", got, "01:30")
	}
}

func TestUrgencyFor(t *testing.T) {
	tests := []struct {
		remaining int
		want      Urgency
	}{
		{90, UrgencyNormal},
		{31, UrgencyNormal},
		{30, UrgencyWarning},
		{11, UrgencyWarning},
		{10, UrgencyDanger},
		{0, UrgencyDanger},
	}
	for _, tt := range tests {
		if got := UrgencyFor(tt.remaining); got != tt.want {
			t.Errorf("UrgencyFor(%d) = %d, want %d", tt.remaining, got, tt.want)
		}
	}
}
