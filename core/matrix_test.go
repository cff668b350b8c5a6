package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/huangsam/talentview/schema"
)

func matrixFixture() *schema.TalentMatrixData {
	return &schema.TalentMatrixData{
		Cycle: "2025.1",
		Positions: []schema.TalentMatrixPosition{
			{ID: "u1", Name: "Ana Oliveira", PerformanceScore: 4.8, PotentialScore: 4.6, MatrixPosition: 9},
			{ID: "u2", Name: "Bruno Mendes", PerformanceScore: 3.1, PotentialScore: 4.4, MatrixPosition: 8},
			{ID: "u3", Name: "Carla Souza", PerformanceScore: 4.5, PotentialScore: 4.9, MatrixPosition: 9},
			{ID: "u4", Name: "Diego Costa", PerformanceScore: 1.8, PotentialScore: 2.0, MatrixPosition: 1},
		},
		Stats: schema.MatrixStats{TotalCollaborators: 4, AveragePerformance: 3.55, AveragePotential: 3.97},
	}
}

// TestGroupPositions tests the 9-box grouping.
func TestGroupPositions(t *testing.T) {
	t.Run("groups by cell id", func(t *testing.T) {
		matrix, err := GroupPositions(matrixFixture())
		assert.NoError(t, err)
		assert.False(t, matrix.Insufficient)
		assert.Len(t, matrix.Cells[9], 2)
		assert.Len(t, matrix.Cells[8], 1)
		assert.Len(t, matrix.Cells[1], 1)
	})

	t.Run("all nine cells are present even when empty", func(t *testing.T) {
		matrix, err := GroupPositions(matrixFixture())
		assert.NoError(t, err)
		assert.Len(t, matrix.Cells, 9)
		for id := 1; id <= 9; id++ {
			_, ok := matrix.Cells[id]
			assert.True(t, ok, "cell %d should exist", id)
		}
	})

	t.Run("cell sizes sum to input length", func(t *testing.T) {
		data := matrixFixture()
		matrix, err := GroupPositions(data)
		assert.NoError(t, err)
		total := 0
		for _, positions := range matrix.Cells {
			total += len(positions)
		}
		assert.Equal(t, len(data.Positions), total)
	})

	t.Run("invalid position id is a data error", func(t *testing.T) {
		data := matrixFixture()
		data.Positions[0].MatrixPosition = 12
		_, err := GroupPositions(data)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid matrix position")
	})

	t.Run("insufficient data carries upstream message", func(t *testing.T) {
		data := &schema.TalentMatrixData{
			Cycle:               "2025.1",
			HasInsufficientData: true,
			Message:             "Aguardando avaliações.",
		}
		matrix, err := GroupPositions(data)
		assert.NoError(t, err)
		assert.True(t, matrix.Insufficient)
		assert.Equal(t, "Aguardando avaliações.", matrix.Message)
	})

	t.Run("insufficient data gets a default message", func(t *testing.T) {
		data := &schema.TalentMatrixData{Cycle: "2025.1", HasInsufficientData: true}
		matrix, err := GroupPositions(data)
		assert.NoError(t, err)
		assert.True(t, matrix.Insufficient)
		assert.NotEmpty(t, matrix.Message)
	})
}

// TestFilterByLabel tests the cell label filter.
func TestFilterByLabel(t *testing.T) {
	positions := matrixFixture().Positions

	t.Run("keeps only the labeled cell", func(t *testing.T) {
		filtered := FilterByLabel(positions, "Estrela")
		assert.Len(t, filtered, 2)
		for _, pos := range filtered {
			assert.Equal(t, 9, pos.MatrixPosition)
		}
	})

	t.Run("unknown label yields empty", func(t *testing.T) {
		filtered := FilterByLabel(positions, "Unicorn")
		assert.Empty(t, filtered)
		assert.NotNil(t, filtered)
	})

	t.Run("empty label keeps everything in a fresh slice", func(t *testing.T) {
		filtered := FilterByLabel(positions, "")
		assert.Equal(t, positions, filtered)
		if len(filtered) > 0 {
			filtered[0].ID = "mutated"
			assert.NotEqual(t, "mutated", positions[0].ID)
		}
	})
}
