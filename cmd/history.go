package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huangsam/talentview/core"
	"github.com/huangsam/talentview/internal/apiclient"
	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/internal/outwriter"
)

// historyCmd shows one subordinate's score trajectory across cycles.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show one subordinate's performance history across cycles.",
	Long: `Fetch a subordinate's final score for every cycle, along with the
weighted composition behind each score (self, manager, and 360 terms).

Requires --subordinate.

Examples:
  # Score history with composition breakdowns
  talentview history --subordinate u42

  # Export the per-source terms to CSV
  talentview history --subordinate u42 --output csv --output-file history.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		output, err := core.GetPerformanceHistoryResults(rootCtx, cfg, client)
		if err != nil {
			if apiclient.IsDataAbsent(err) {
				reportDataAbsent(err)
				return
			}
			contract.LogFatal("Cannot load performance history", err)
		}
		if err := outwriter.WritePerformanceHistory(output, cfg); err != nil {
			contract.LogFatal("Cannot write performance history", err)
		}
	},
}

// teamHistoryCmd shows the team trend across cycles.
var teamHistoryCmd = &cobra.Command{
	Use:   "team-history",
	Short: "Show the team average trend across evaluation cycles.",
	Long: `Fetch the team's average score, collaborator count, and finalization
percentage for every past cycle.

Examples:
  # Team trend table
  talentview team-history

  # Export the trend to JSON
  talentview team-history --output json --output-file trend.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		history, err := core.GetTeamHistoryResults(rootCtx, client)
		if err != nil {
			if apiclient.IsDataAbsent(err) {
				reportDataAbsent(err)
				return
			}
			contract.LogFatal("Cannot load team history", err)
		}
		if err := outwriter.WriteTeamHistory(history, cfg); err != nil {
			contract.LogFatal("Cannot write team history", err)
		}
	},
}
