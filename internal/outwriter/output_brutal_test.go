package outwriter

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/talentview/core"
	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/schema"
)

func brutalFixture() *core.BrutalFactsOutput {
	return &core.BrutalFactsOutput{
		Metrics: &schema.BrutalFactsMetrics{
			Cycle:                    "2025.1",
			TeamAverageScore:         schema.Float64Ptr(4.1),
			SelfAssessmentAverage:    schema.Float64Ptr(4.4),
			ManagerAssessmentAverage: schema.Float64Ptr(3.9),
			Assessment360Average:     schema.Float64Ptr(4.0),
			TotalCollaborators:       8,
			FinalizedAssessments:     6,
			PendingAssessments:       1,
			DraftAssessments:         1,
			CompletionRate:           75,
		},
	}
}

// TestWriteBrutalCSV tests the single-row metrics CSV.
func TestWriteBrutalCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeBrutalCSV(&buf, brutalFixture(), &contract.Config{Precision: 1})
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, brutalFactsCSVHeader, records[0])
	row := records[1]
	assert.Equal(t, "2025.1", row[0])
	assert.Equal(t, "4.1", row[1])
	assert.Equal(t, "8", row[5])
	assert.Equal(t, "75.00", row[9])
}

// TestWriteBrutalText tests the metrics table plus the analysis narrative.
func TestWriteBrutalText(t *testing.T) {
	cfg := &contract.Config{Precision: 1}

	t.Run("without analysis", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeBrutalText(&buf, brutalFixture(), cfg))
		assert.Contains(t, buf.String(), "No team analysis available for this cycle yet.")
	})

	t.Run("with analysis", func(t *testing.T) {
		output := brutalFixture()
		output.Analysis = &schema.TeamAnalysis{
			Cycle:            "2025.1",
			Summary:          "Time consistente com boa colaboração.",
			Strengths:        []string{"Entrega", "Colaboração"},
			ImprovementAreas: []string{"Documentação"},
			Collaborators: []schema.CollaboratorAnalysis{
				{ID: "u1", Name: "Ana Oliveira", FinalScore: schema.Float64Ptr(4.3), Insight: "Pronta para liderar."},
			},
		}

		var buf bytes.Buffer
		require.NoError(t, writeBrutalText(&buf, output, cfg))

		out := buf.String()
		assert.Contains(t, out, "Time consistente com boa colaboração.")
		assert.Contains(t, out, "Strengths:\n  - Entrega\n  - Colaboração")
		assert.Contains(t, out, "Improvement Areas:\n  - Documentação")
		assert.Contains(t, out, "Ana Oliveira (Ótimo): Pronta para liderar.")
		assert.NotContains(t, out, "No team analysis available")
	})
}
