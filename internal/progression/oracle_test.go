package progression

import "testing"

func TestProjectScore(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     int
	}{
		{0, 1000},
		{100, 1600},
		{83, 1498},
		{50, 1300},
		{12.5, 1075},
	}
	for _, tt := range tests {
		if got := ProjectScore(tt.accuracy, OracleBaseScore, OracleMaxScore); got != tt.want {
			t.Errorf("ProjectScore(%v) = %d, want %d", tt.accuracy, got, tt.want)
		}
	}
}

func TestProjectProbability(t *testing.T) {
	tests := []struct {
		name                    string
		target, predicted, days int
		want                    int
	}{
		{"at target", 1500, 1500, 45, 95},
		{"above target", 1500, 1600, 0, 95},
		{"ceiling", 1500, 1420, 45, 90},
		{"mid", 1500, 1000, 45, 44},
		{"floor", 1500, 1000, 1, 10},
		{"zero days treated as one", 1500, 1000, 0, 10},
		{"exact", 1500, 1400, 100, 90},
		{"rounded", 1500, 1300, 30, 67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProjectProbability(tt.target, tt.predicted, tt.days); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProjectProbability_AlwaysInRange(t *testing.T) {
	for target := 0; target <= 1600; target += 97 {
		for predicted := 0; predicted <= 1600; predicted += 89 {
			for days := 0; days <= 400; days += 37 {
				got := ProjectProbability(target, predicted, days)
				if got < ProbabilityFloor || got > ProbabilityOnTrack {
					t.Fatalf("ProjectProbability(%d, %d, %d) = %d", target, predicted, days, got)
				}
			}
		}
	}
}
