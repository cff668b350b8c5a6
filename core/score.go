// Package core implements the evaluation dashboard logic: score bucketing,
// collaborator transformation, list querying, talent matrix grouping, and
// weighted score composition.
package core

import (
	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/schema"
)

// ScoreDisplay pairs a score label with its display color name.
type ScoreDisplay struct {
	Label string
	Color string
}

// Display color names for the score threshold table.
const (
	ColorGray  = "gray"
	ColorBlue  = "blue"
	ColorGreen = "green"
	ColorAmber = "amber"
	ColorRed   = "red"
)

// ScoreColor maps a score to its display label and color. The threshold
// table is evaluated top-down and the first match wins; equality at the 4
// and 3 boundaries goes to the higher bucket.
func ScoreColor(score *float64) ScoreDisplay {
	if score == nil {
		return ScoreDisplay{Label: contract.UnscoredValue, Color: ColorGray}
	}
	switch s := *score; {
	case s == 5:
		return ScoreDisplay{Label: contract.PerfectValue, Color: ColorBlue}
	case s >= 4:
		return ScoreDisplay{Label: contract.GreatValue, Color: ColorGreen}
	case s >= 3:
		return ScoreDisplay{Label: contract.RegularValue, Color: ColorAmber}
	default:
		return ScoreDisplay{Label: contract.PoorValue, Color: ColorRed}
	}
}

// isUnscored reports whether a final score is missing. A zero score counts
// as missing, matching the upstream scoring engine which never emits an
// exact zero for a scored collaborator.
func isUnscored(score *float64) bool {
	return score == nil || *score == 0
}

// FinalScoreColor buckets a final score into its card color. An unscored
// collaborator falls back to yellow.
func FinalScoreColor(score *float64) schema.ScoreBucketColor {
	if isUnscored(score) {
		return schema.YellowBucket
	}
	switch s := *score; {
	case s >= 4.5:
		return schema.GreenBucket
	case s >= 3.5:
		return schema.TealBucket
	default:
		return schema.YellowBucket
	}
}

// StatusBucket buckets a final score into a high/medium/low status. An
// unscored collaborator falls back to medium, NOT to the yellow bucket's
// low threshold. The fallbacks intentionally disagree with FinalScoreColor;
// unifying them would change what managers see for pending evaluations.
func StatusBucket(score *float64) schema.CollaboratorStatus {
	if isUnscored(score) {
		return schema.MediumStatus
	}
	switch s := *score; {
	case s >= 4.0:
		return schema.HighStatus
	case s >= 3.5:
		return schema.MediumStatus
	default:
		return schema.LowStatus
	}
}

// MatchesBand reports whether a final score falls in the given performance
// band. AllBands matches everything; an unscored collaborator never matches
// a specific band.
func MatchesBand(score *float64, band schema.PerformanceBand) bool {
	if band == schema.AllBands || band == "" {
		return true
	}
	if isUnscored(score) {
		return false
	}
	s := *score
	switch band {
	case schema.HighBand:
		return s >= 4.0
	case schema.MediumBand:
		return s >= 3.5 && s < 4.0
	case schema.LowBand:
		return s < 3.5
	default:
		return false
	}
}
