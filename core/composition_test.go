package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/huangsam/talentview/schema"
)

// TestComposition tests the weighted score composition.
func TestComposition(t *testing.T) {
	t.Run("manager present uses the three-way split", func(t *testing.T) {
		rows := Composition(schema.Float64Ptr(4.0), schema.Float64Ptr(3.0), schema.Float64Ptr(5.0))
		assert.Len(t, rows, 3)

		assert.Equal(t, SourceSelf, rows[0].Source)
		assert.Equal(t, 0.2, rows[0].Weight)
		assert.InDelta(t, 0.8, rows[0].Contribution, 1e-9)

		assert.Equal(t, SourceManager, rows[1].Source)
		assert.Equal(t, 0.5, rows[1].Weight)
		assert.InDelta(t, 1.5, rows[1].Contribution, 1e-9)

		assert.Equal(t, Source360, rows[2].Source)
		assert.Equal(t, 0.3, rows[2].Weight)
		assert.InDelta(t, 1.5, rows[2].Contribution, 1e-9)
	})

	t.Run("manager absent redistributes its weight", func(t *testing.T) {
		rows := Composition(schema.Float64Ptr(4.0), nil, schema.Float64Ptr(5.0))
		assert.Len(t, rows, 2)

		assert.Equal(t, SourceSelf, rows[0].Source)
		assert.Equal(t, 0.4, rows[0].Weight)

		assert.Equal(t, Source360, rows[1].Source)
		assert.Equal(t, 0.6, rows[1].Weight)
	})

	t.Run("weights sum to one in both arms", func(t *testing.T) {
		withManager := Composition(schema.Float64Ptr(1), schema.Float64Ptr(1), schema.Float64Ptr(1))
		sum := 0.0
		for _, row := range withManager {
			sum += row.Weight
		}
		assert.InDelta(t, 1.0, sum, 1e-9)

		withoutManager := Composition(schema.Float64Ptr(1), nil, schema.Float64Ptr(1))
		sum = 0.0
		for _, row := range withoutManager {
			sum += row.Weight
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("absent sources produce no rows", func(t *testing.T) {
		rows := Composition(nil, schema.Float64Ptr(3.5), nil)
		assert.Len(t, rows, 1)
		assert.Equal(t, SourceManager, rows[0].Source)

		assert.Empty(t, Composition(nil, nil, nil))
	})

	t.Run("missing self keeps the manager-present weights", func(t *testing.T) {
		// Only the manager's absence triggers redistribution.
		rows := Composition(nil, schema.Float64Ptr(4.0), schema.Float64Ptr(2.0))
		assert.Len(t, rows, 2)
		assert.Equal(t, 0.5, rows[0].Weight)
		assert.Equal(t, 0.3, rows[1].Weight)
	})
}
