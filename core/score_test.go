package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/schema"
)

// TestScoreColor tests the score threshold table.
func TestScoreColor(t *testing.T) {
	tests := []struct {
		name  string
		score *float64
		label string
		color string
	}{
		{"nil score", nil, contract.UnscoredValue, ColorGray},
		{"exact five", schema.Float64Ptr(5), contract.PerfectValue, ColorBlue},
		{"just under five", schema.Float64Ptr(4.9), contract.GreatValue, ColorGreen},
		{"exact four", schema.Float64Ptr(4), contract.GreatValue, ColorGreen},
		{"mid regular", schema.Float64Ptr(3.2), contract.RegularValue, ColorAmber},
		{"exact three", schema.Float64Ptr(3), contract.RegularValue, ColorAmber},
		{"just under three", schema.Float64Ptr(2.99), contract.PoorValue, ColorRed},
		{"zero is still poor for labels", schema.Float64Ptr(0), contract.PoorValue, ColorRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display := ScoreColor(tt.score)
			assert.Equal(t, tt.label, display.Label)
			assert.Equal(t, tt.color, display.Color)
		})
	}
}

// TestFinalScoreColor tests the card color buckets.
func TestFinalScoreColor(t *testing.T) {
	tests := []struct {
		name     string
		score    *float64
		expected schema.ScoreBucketColor
	}{
		{"nil falls back to yellow", nil, schema.YellowBucket},
		{"zero falls back to yellow", schema.Float64Ptr(0), schema.YellowBucket},
		{"green at boundary", schema.Float64Ptr(4.5), schema.GreenBucket},
		{"teal at boundary", schema.Float64Ptr(3.5), schema.TealBucket},
		{"teal just under green", schema.Float64Ptr(4.49), schema.TealBucket},
		{"yellow below teal", schema.Float64Ptr(3.49), schema.YellowBucket},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FinalScoreColor(tt.score))
		})
	}
}

// TestStatusBucket tests the status buckets, including the fallback that
// deliberately disagrees with the color buckets.
func TestStatusBucket(t *testing.T) {
	tests := []struct {
		name     string
		score    *float64
		expected schema.CollaboratorStatus
	}{
		{"nil falls back to medium", nil, schema.MediumStatus},
		{"zero falls back to medium", schema.Float64Ptr(0), schema.MediumStatus},
		{"high at boundary", schema.Float64Ptr(4.0), schema.HighStatus},
		{"medium at boundary", schema.Float64Ptr(3.5), schema.MediumStatus},
		{"medium just under high", schema.Float64Ptr(3.99), schema.MediumStatus},
		{"low below medium", schema.Float64Ptr(3.49), schema.LowStatus},
		{"low but not unscored", schema.Float64Ptr(1), schema.LowStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusBucket(tt.score))
		})
	}

	t.Run("fallbacks diverge between color and status", func(t *testing.T) {
		// An unscored collaborator shows a yellow card yet a medium status.
		assert.Equal(t, schema.YellowBucket, FinalScoreColor(nil))
		assert.Equal(t, schema.MediumStatus, StatusBucket(nil))
	})
}

// TestMatchesBand tests band filtering semantics.
func TestMatchesBand(t *testing.T) {
	tests := []struct {
		name     string
		score    *float64
		band     schema.PerformanceBand
		expected bool
	}{
		{"all matches scored", schema.Float64Ptr(2), schema.AllBands, true},
		{"all matches unscored", nil, schema.AllBands, true},
		{"empty band matches everything", nil, "", true},
		{"high at boundary", schema.Float64Ptr(4.0), schema.HighBand, true},
		{"high excludes medium range", schema.Float64Ptr(3.9), schema.HighBand, false},
		{"medium lower boundary", schema.Float64Ptr(3.5), schema.MediumBand, true},
		{"medium upper boundary is exclusive", schema.Float64Ptr(4.0), schema.MediumBand, false},
		{"low below medium", schema.Float64Ptr(3.49), schema.LowBand, true},
		{"unscored never matches high", nil, schema.HighBand, false},
		{"unscored never matches low", nil, schema.LowBand, false},
		{"zero score never matches low", schema.Float64Ptr(0), schema.LowBand, false},
		{"unknown band matches nothing", schema.Float64Ptr(4), schema.PerformanceBand("elite"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchesBand(tt.score, tt.band))
		})
	}
}
