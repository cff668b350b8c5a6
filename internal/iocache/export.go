package iocache

import (
	"errors"
	"fmt"

	"github.com/huangsam/talentview/internal/parquet"
)

// ExecuteSnapshotExport performs the actual export of snapshot data to Parquet files.
func ExecuteSnapshotExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the snapshot store
	store := Manager.GetSnapshotStore()
	if store == nil {
		return errors.New("snapshot tracking is not enabled")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get snapshot status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no snapshot data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total snapshot runs: %d\n", status.TotalRuns)
	fmt.Printf("Total score records: %d\n", status.TableSizes[collaboratorScoresTable])

	// Retrieve all snapshot runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve snapshot runs: %w", err)
	}

	// Retrieve all collaborator scores
	scores, err := store.GetAllScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve collaborator scores: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertSnapshotRunRecords(runs)
	parquetScores := parquet.ConvertCollaboratorScoreRecords(scores)

	// Write snapshot runs to Parquet
	runsFile := outputFile + ".snapshot_runs.parquet"
	if err := parquet.WriteSnapshotRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write snapshot runs: %w", err)
	}
	fmt.Printf("Exported %d snapshot runs to: %s\n", len(parquetRuns), runsFile)

	// Write collaborator scores to Parquet
	scoresFile := outputFile + ".collaborator_scores.parquet"
	if err := parquet.WriteCollaboratorScoresParquet(parquetScores, scoresFile); err != nil {
		return fmt.Errorf("failed to write collaborator scores: %w", err)
	}
	fmt.Printf("Exported %d score records to: %s\n", len(parquetScores), scoresFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
