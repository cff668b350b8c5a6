package iocache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/talentview/schema"
)

func TestSnapshotStore_NoneBackend(t *testing.T) {
	store, err := NewSnapshotStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// BeginRun should return 0 for NoneBackend
	runID, err := store.BeginRun(time.Now(), map[string]any{"cycle": "2025.1"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	// Other operations should not error
	err = store.RecordCollaborator(1, "2025.1", schema.ProcessedCollaborator{})
	assert.NoError(t, err)

	err = store.EndRun(1, time.Now(), 3)
	assert.NoError(t, err)

	err = store.Close()
	assert.NoError(t, err)
}

func TestSnapshotStore_SQLite(t *testing.T) {
	// Use in-memory SQLite for testing
	store, err := NewSnapshotStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Test BeginRun
	startTime := time.Now()
	configParams := map[string]any{
		"cycle": "2025.1",
		"band":  "high",
		"sort":  "highest_score",
	}
	runID, err := store.BeginRun(startTime, configParams)
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	// Test RecordCollaborator
	collaborator := schema.ProcessedCollaborator{
		CollaboratorMetric: schema.CollaboratorMetric{
			ID:                       "u1",
			Name:                     "Ana Oliveira",
			SelfAssessmentAverage:    schema.Float64Ptr(4.0),
			Assessment360Average:     schema.Float64Ptr(4.5),
			ManagerAssessmentAverage: schema.Float64Ptr(4.3),
			FinalScore:               schema.Float64Ptr(4.3),
		},
		Initials:        "AO",
		FinalScoreColor: schema.TealBucket,
		Status:          schema.HighStatus,
	}
	err = store.RecordCollaborator(runID, "2025.1", collaborator)
	assert.NoError(t, err)

	// Unscored collaborators store NULLs, not zeros
	err = store.RecordCollaborator(runID, "2025.1", schema.ProcessedCollaborator{
		CollaboratorMetric: schema.CollaboratorMetric{ID: "u2", Name: "Bruno Mendes"},
		Initials:           "BM",
		FinalScoreColor:    schema.YellowBucket,
		Status:             schema.MediumStatus,
	})
	assert.NoError(t, err)

	// Test EndRun
	err = store.EndRun(runID, startTime.Add(2*time.Second), 2)
	assert.NoError(t, err)

	// Test GetStatus
	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(1), status.TotalRuns)
	assert.Equal(t, int64(2), status.TotalScores)

	// Test GetAllRuns
	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].RunID)
	assert.Equal(t, 2, runs[0].TotalCollaborators)
	require.NotNil(t, runs[0].RunDurationMs)
	assert.GreaterOrEqual(t, *runs[0].RunDurationMs, int32(2000))

	// Test GetAllScores
	scores, err := store.GetAllScores()
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, "u1", scores[0].CollaboratorID)
	assert.Equal(t, "Ótimo", scores[0].ScoreLabel)
	assert.Nil(t, scores[1].FinalScore)
	assert.Equal(t, "-", scores[1].ScoreLabel)
}

func TestSnapshotStore_MultipleRuns(t *testing.T) {
	store, err := NewSnapshotStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	for i := 0; i < 3; i++ {
		runID, err := store.BeginRun(time.Now(), map[string]any{"cycle": "2025.1"})
		require.NoError(t, err)
		require.NoError(t, store.EndRun(runID, time.Now(), 0))
	}

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(3), status.TotalRuns)
	assert.Equal(t, int64(3), status.LastRunID)
}

func TestSnapshotStore_UnsupportedBackend(t *testing.T) {
	_, err := NewSnapshotStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}

func TestTableNameHelpers(t *testing.T) {
	t.Run("valid identifiers pass", func(t *testing.T) {
		assert.NoError(t, validateTableName(snapshotRunsTable))
		assert.NoError(t, validateTableName(collaboratorScoresTable))
	})

	t.Run("injection attempts fail", func(t *testing.T) {
		assert.Error(t, validateTableName(""))
		assert.Error(t, validateTableName("scores; DROP TABLE users"))
		assert.Error(t, validateTableName("1starts_with_digit"))
	})

	t.Run("quoting per backend", func(t *testing.T) {
		assert.Equal(t, "`t`", quoteTableName("t", schema.MySQLBackend))
		assert.Equal(t, `"t"`, quoteTableName("t", schema.PostgreSQLBackend))
		assert.Equal(t, `"t"`, quoteTableName("t", schema.SQLiteBackend))
	})
}
