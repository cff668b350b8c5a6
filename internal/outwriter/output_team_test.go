package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/talentview/core"
	"github.com/huangsam/talentview/schema"
)

func teamFixture() []schema.ProcessedCollaborator {
	return core.TransformAll([]schema.CollaboratorMetric{
		{
			ID:                       "u1",
			Name:                     "Ana Oliveira",
			JobTitle:                 "Backend Engineer",
			SelfAssessmentAverage:    schema.Float64Ptr(4.0),
			Assessment360Average:     schema.Float64Ptr(4.5),
			ManagerAssessmentAverage: schema.Float64Ptr(4.3),
			FinalScore:               schema.Float64Ptr(4.3),
		},
		{ID: "u2", Name: "Bruno Mendes", JobTitle: "Data Analyst"},
	})
}

// TestWriteTeamCSV tests the collaborator CSV rendering.
func TestWriteTeamCSV(t *testing.T) {
	_, fmtScore := createFormatters(1)

	var buf bytes.Buffer
	err := writeTeamCSV(&buf, teamFixture(), fmtScore)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, "id", header[0])
	assert.Equal(t, "final_score", header[8])
	assert.Equal(t, "initials", header[12])

	scored := records[1]
	assert.Equal(t, "u1", scored[0])
	assert.Equal(t, "4.3", scored[8])
	assert.Equal(t, "Ótimo", scored[9])
	assert.Equal(t, "teal", scored[10])
	assert.Equal(t, "high", scored[11])
	assert.Equal(t, "AO", scored[12])

	unscored := records[2]
	assert.Equal(t, "", unscored[8], "absent final score is an empty cell")
	assert.Equal(t, "-", unscored[9], "label still shows the dash")
	assert.Equal(t, "medium", unscored[11])
}

// TestWriteTeamJSON tests the collaborator JSON rendering.
func TestWriteTeamJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeTeamJSON(&buf, teamFixture())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, float64(1), decoded[0]["rank"])
	assert.Equal(t, "Ótimo", decoded[0]["label"])
	assert.Equal(t, "Ana Oliveira", decoded[0]["name"])

	assert.Equal(t, float64(2), decoded[1]["rank"])
	assert.Equal(t, "-", decoded[1]["label"])
	assert.Nil(t, decoded[1]["finalScore"])
}
