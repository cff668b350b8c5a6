// Package parquet provides data structures and functions for exporting
// snapshot data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/huangsam/talentview/schema"
)

// SnapshotRun represents a single team-overview snapshot run with metadata.
// This struct maps to the talentview_snapshot_runs database table.
type SnapshotRun struct {
	// RunID is the unique identifier for this snapshot run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalCollaborators is the number of collaborators recorded in this run
	TotalCollaborators int32 `parquet:"total_collaborators,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// CollaboratorScore represents one collaborator's scores inside a snapshot run.
// This struct maps to the talentview_collaborator_scores database table.
type CollaboratorScore struct {
	// RunID references the parent snapshot run
	RunID int64 `parquet:"run_id,snappy"`

	// Cycle is the evaluation cycle the scores belong to
	Cycle string `parquet:"cycle,snappy"`

	// CollaboratorID is the collaborator's unique identifier
	CollaboratorID string `parquet:"collaborator_id,snappy"`

	// Name is the collaborator's display name
	Name string `parquet:"name,snappy"`

	// SelfAverage is the self-assessment average (nullable)
	SelfAverage *float64 `parquet:"self_average,optional,snappy"`

	// Assessment360Average is the 360 assessment average (nullable)
	Assessment360Average *float64 `parquet:"assessment360_average,optional,snappy"`

	// ManagerAverage is the manager assessment average (nullable)
	ManagerAverage *float64 `parquet:"manager_average,optional,snappy"`

	// FinalScore is the consolidated final score (nullable when unscored)
	FinalScore *float64 `parquet:"final_score,optional,snappy"`

	// ScoreLabel is the display label derived from the final score
	ScoreLabel string `parquet:"score_label,snappy"`

	// Status is the high/medium/low status bucket
	Status string `parquet:"status,snappy"`

	// RecordedAt is when this row was recorded
	RecordedAt time.Time `parquet:"recorded_at,snappy"`
}

// WriteSnapshotRunsParquet writes a slice of SnapshotRun structs to a Parquet file.
func WriteSnapshotRunsParquet(data []SnapshotRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the SnapshotRun struct tags
	writer := parquet.NewGenericWriter[SnapshotRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteCollaboratorScoresParquet writes a slice of CollaboratorScore structs to a Parquet file.
func WriteCollaboratorScoresParquet(data []CollaboratorScore, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the CollaboratorScore struct tags
	writer := parquet.NewGenericWriter[CollaboratorScore](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertSnapshotRunRecords converts schema.SnapshotRunRecord to SnapshotRun for Parquet export.
func ConvertSnapshotRunRecords(records []schema.SnapshotRunRecord) []SnapshotRun {
	result := make([]SnapshotRun, len(records))
	for i, record := range records {
		result[i] = SnapshotRun{
			RunID:              record.RunID,
			StartTime:          record.StartTime,
			EndTime:            record.EndTime,
			RunDurationMs:      record.RunDurationMs,
			TotalCollaborators: int32(record.TotalCollaborators),
			ConfigParams:       record.ConfigParams,
		}
	}
	return result
}

// ConvertCollaboratorScoreRecords converts schema.SnapshotScoreRecord to CollaboratorScore for Parquet export.
func ConvertCollaboratorScoreRecords(records []schema.SnapshotScoreRecord) []CollaboratorScore {
	result := make([]CollaboratorScore, len(records))
	for i, record := range records {
		result[i] = CollaboratorScore{
			RunID:                record.RunID,
			Cycle:                record.Cycle,
			CollaboratorID:       record.CollaboratorID,
			Name:                 record.Name,
			SelfAverage:          record.SelfAverage,
			Assessment360Average: record.Assessment360Average,
			ManagerAverage:       record.ManagerAverage,
			FinalScore:           record.FinalScore,
			ScoreLabel:           record.ScoreLabel,
			Status:               record.Status,
			RecordedAt:           record.RecordedAt,
		}
	}
	return result
}
