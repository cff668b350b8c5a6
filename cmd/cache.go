package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/talentview/internal/iocache"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	ttl, err := time.ParseDuration(viper.GetString("cache-ttl"))
	if err != nil {
		return fmt.Errorf("invalid cache-ttl: %w", err)
	}

	// Initialize the response cache only (no snapshot tracking for cache commands)
	if err := iocache.InitStores(ttl, "", ""); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	cacheManager = iocache.Manager

	cfg.CacheTTL = ttl

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on API response cache management.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the in-memory API response cache",
	Long: `Manage the short-lived cache that sits in front of the evaluation API.

Responses are kept in memory for the configured TTL so that repeated reads
within one session do not hammer the API. Concurrent requests for the same
resource are coalesced into a single fetch.

Subcommands:
  status - Show cache statistics
  clear  - Drop all cached responses

Examples:
  # Check cache status
  talentview cache status

  # Drop everything cached so far
  talentview cache clear`,
}

// cacheClearCmd clears the response cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop all cached API responses",
	Long: `Invalidate every cached API response.

Use this when evaluation data changed server-side and you need fresh reads
before the TTL expires.

Examples:
  # Drop all cached responses
  talentview cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		cacheManager.GetCache().InvalidateAll()
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows response cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics",
	Long: `Show the configured TTL and the number of live cached responses.

Examples:
  # Check cache status
  talentview cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status := cacheManager.GetCache().Status()
		iocache.PrintCacheStatus(status)
	},
}
