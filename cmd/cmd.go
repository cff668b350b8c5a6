// Package cmd defines the command-line interface for talentview.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(brutalCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(teamHistoryCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(mcpCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the snapshot subcommands to the parent snapshot command
	snapshotCmd.AddCommand(snapshotClearCmd)
	snapshotCmd.AddCommand(snapshotStatusCmd)
	snapshotCmd.AddCommand(snapshotExportCmd)
	snapshotCmd.AddCommand(snapshotMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("api-url", "", "Base URL of the evaluation API")
	rootCmd.PersistentFlags().String("api-token", "", "Bearer token for the evaluation API")
	rootCmd.PersistentFlags().StringP("cycle", "c", "", "Evaluation cycle to inspect (e.g., 2025.1)")
	rootCmd.PersistentFlags().StringP("search", "s", "", "Filter collaborators by name or job title substring")
	rootCmd.PersistentFlags().String("status", contract.StatusWildcard, "Filter by status: high or medium or low or all")
	rootCmd.PersistentFlags().String("band", string(schema.AllBands), "Filter by performance band: high or medium or low or all")
	rootCmd.PersistentFlags().String("sort", string(schema.AlphabeticalOrder), "Sort order: alphabetical or highest_score or lowest_score")
	rootCmd.PersistentFlags().String("category", "", "Filter talent matrix by cell label (e.g., Estrela)")
	rootCmd.PersistentFlags().String("subordinate", "", "Subordinate id for history and projects commands")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for score columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("cache-ttl", contract.DefaultCacheTTL.String(), "Time-to-live for cached API responses")
	rootCmd.PersistentFlags().String("timeout", contract.DefaultHTTPTimeout.String(), "HTTP timeout for API requests")
	rootCmd.PersistentFlags().String("snapshot-backend", "", "Snapshot tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("snapshot-db-connect", "", "Database connection string for mysql/postgresql snapshot tracking")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of snapshotMigrateCmd to Viper
	snapshotMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(snapshotMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding snapshot migrate flags", err)
	}
}
