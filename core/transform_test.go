package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/huangsam/talentview/schema"
)

// TestTransform tests derivation of the display-ready record.
func TestTransform(t *testing.T) {
	t.Run("scored collaborator", func(t *testing.T) {
		m := schema.CollaboratorMetric{
			ID:         "u1",
			Name:       "Ana Oliveira",
			JobTitle:   "Engineer",
			FinalScore: schema.Float64Ptr(4.2),
		}
		p := Transform(m)
		assert.Equal(t, "AO", p.Initials)
		assert.Equal(t, schema.TealBucket, p.FinalScoreColor)
		assert.Equal(t, schema.HighStatus, p.Status)
		assert.Equal(t, m, p.CollaboratorMetric)
	})

	t.Run("unscored collaborator", func(t *testing.T) {
		m := schema.CollaboratorMetric{ID: "u2", Name: "Bruno Mendes"}
		p := Transform(m)
		assert.Equal(t, "BM", p.Initials)
		assert.Equal(t, schema.YellowBucket, p.FinalScoreColor)
		assert.Equal(t, schema.MediumStatus, p.Status)
		assert.Nil(t, p.FinalScore)
	})
}

// TestTransformAll tests batch transformation.
func TestTransformAll(t *testing.T) {
	metrics := []schema.CollaboratorMetric{
		{ID: "u1", Name: "Ana Oliveira", FinalScore: schema.Float64Ptr(4.8)},
		{ID: "u2", Name: "Bruno Mendes"},
	}
	processed := TransformAll(metrics)
	assert.Len(t, processed, 2)
	assert.Equal(t, schema.GreenBucket, processed[0].FinalScoreColor)
	assert.Equal(t, schema.YellowBucket, processed[1].FinalScoreColor)

	assert.Empty(t, TransformAll(nil))
}
