package progression

import "math"

// Score range used by the Oracle projection.
const (
	OracleBaseScore = 1000
	OracleMaxScore  = 1600
)

// Probability bounds. A projection at or above target always reports
// ProbabilityOnTrack; otherwise the value is clamped to
// [ProbabilityFloor, ProbabilityCeiling].
const (
	ProbabilityOnTrack = 95
	ProbabilityFloor   = 10
	ProbabilityCeiling = 90
)

// ProjectScore maps an accuracy percentage onto [base, max].
func ProjectScore(accuracyPercent float64, base, max int) int {
	return int(math.Round(float64(base) + float64(max-base)*accuracyPercent/100))
}

// ProjectProbability estimates the chance of reaching target from predicted
// with daysLeft days remaining. The result is always within [10, 95].
func ProjectProbability(target, predicted, daysLeft int) int {
	if predicted >= target {
		return ProbabilityOnTrack
	}
	perDay := float64(target-predicted) / float64(max(1, daysLeft))
	p := 100 - perDay*5
	p = math.Max(ProbabilityFloor, math.Min(ProbabilityCeiling, p))
	return int(math.Round(p))
}

// Oracle is the persisted score projection.
type Oracle struct {
	PredictedScore int `json:"predicted_score"`
	TargetScore    int `json:"target_score"`
	Probability    int `json:"probability"`
	DaysLeft       int `json:"days_left"`
}

// Recalculate updates the projection from a weighted accuracy percentage.
func (o *Oracle) Recalculate(weightedAccuracy float64) {
	o.PredictedScore = ProjectScore(weightedAccuracy, OracleBaseScore, OracleMaxScore)
	o.Probability = ProjectProbability(o.TargetScore, o.PredictedScore, o.DaysLeft)
}
