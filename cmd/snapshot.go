package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/internal/iocache"
	"github.com/huangsam/talentview/schema"
)

// snapshotSetup loads minimal configuration needed for snapshot operations.
// This is used by commands that need the snapshot store without full shared setup.
func snapshotSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get snapshot-related config values
	backend := schema.DatabaseBackend(viper.GetString("snapshot-backend"))
	connStr := viper.GetString("snapshot-db-connect")

	if backend == "" {
		return fmt.Errorf("snapshot tracking is not configured; set --snapshot-backend")
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize persistence with the loaded config
	if err := iocache.InitStores(contract.DefaultCacheTTL, backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize snapshot store: %w", err)
	}
	cacheManager = iocache.Manager

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr

	return nil
}

// snapshotSetupWrapper wraps snapshotSetup to provide PreRunE for snapshot commands.
func snapshotSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotSetup()
}

// snapshotCmd focused on snapshot tracking management.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage historical snapshots of team overview runs",
	Long: `Manage the database that records every team overview run.

When a snapshot backend is configured, each team command run stores its
parameters and the resulting per-collaborator scores. Snapshots build a
local history of how the team's evaluations moved between reads.

Supported backends: SQLite (default), MySQL, PostgreSQL

Subcommands:
  status  - Show snapshot statistics and connection info
  clear   - Remove all snapshot data
  export  - Export snapshots to Parquet files
  migrate - Run schema migrations

Examples:
  # Check snapshot status
  talentview snapshot status --snapshot-backend sqlite

  # Export history for offline analysis
  talentview snapshot export --snapshot-backend sqlite --output-file team`,
}

// snapshotClearCmd clears all snapshot data.
var snapshotClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded snapshot data",
	Long: `Delete all snapshot runs and collaborator scores from the configured
backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the snapshot tables

Examples:
  # Clear SQLite snapshots (default)
  talentview snapshot clear --snapshot-backend sqlite`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearSnapshots(cfg.SnapshotBackend, contract.GetSnapshotDBFilePath(), cfg.SnapshotDBConnect); err != nil {
			contract.LogFatal("Failed to clear snapshots", err)
		}
		fmt.Println("Snapshots cleared successfully.")
	},
}

// snapshotStatusCmd shows snapshot status.
var snapshotStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display snapshot statistics and connection details",
	Long: `Show detailed information about the snapshot store.

Displays:
- Backend type and connection status
- Total number of recorded runs and scores
- Last and oldest run timestamps
- Table sizes

Examples:
  # Check snapshot status
  talentview snapshot status --snapshot-backend sqlite`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := cacheManager.GetSnapshotStore()
		if store == nil {
			contract.LogFatal("Snapshot store unavailable", fmt.Errorf("no store initialized"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get snapshot status", err)
		}
		iocache.PrintSnapshotStatus(status)
	},
}

// snapshotExportCmd exports snapshot data to Parquet files.
var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export snapshot data to Parquet files",
	Long: `Export all recorded runs and collaborator scores to two Parquet files
named after the --output-file prefix.

Examples:
  # Writes team.snapshot_runs.parquet and team.collaborator_scores.parquet
  talentview snapshot export --snapshot-backend sqlite --output-file team`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteSnapshotExport(viper.GetString("output-file")); err != nil {
			contract.LogFatal("Failed to export snapshots", err)
		}
	},
}

// snapshotMigrateCmd runs schema migrations on the snapshot database.
var snapshotMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations on the snapshot database",
	Long: `Apply or roll back schema migrations for the snapshot tables.

The --target-version flag selects the migration target:
  -1  migrate up to the latest version (default)
   0  roll back everything
   N  migrate to version N

Examples:
  # Migrate to the latest schema
  talentview snapshot migrate --snapshot-backend sqlite

  # Roll back everything
  talentview snapshot migrate --snapshot-backend sqlite --target-version 0`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		target := viper.GetInt("target-version")
		if err := iocache.MigrateSnapshots(cfg.SnapshotBackend, cfg.SnapshotDBConnect, target); err != nil {
			contract.LogFatal("Failed to migrate snapshot schema", err)
		}
		fmt.Println("Snapshot schema migration complete.")
	},
}
