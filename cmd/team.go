package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huangsam/talentview/core"
	"github.com/huangsam/talentview/internal/apiclient"
	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/internal/outwriter"
)

// teamCmd lists the manager's collaborators for a cycle.
var teamCmd = &cobra.Command{
	Use:   "team [cycle]",
	Short: "Show collaborators with their scores for a cycle.",
	Long: `List every collaborator on your team with their self, 360, and manager
averages, their final score with its label, and their status bucket.

The listing can be narrowed by a name/title search, a status filter, or a
performance band, and reordered by score or name.

Examples:
  # Full team for the 2025.1 cycle
  talentview team 2025.1

  # Only collaborators in the high band, best scores first
  talentview team 2025.1 --band high --sort highest_score

  # Search by name and export to CSV
  talentview team 2025.1 --search ana --output csv --output-file team.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		results, err := core.ExecuteTeamOverview(rootCtx, cfg, client, cacheManager)
		if err != nil {
			if apiclient.IsDataAbsent(err) {
				reportDataAbsent(err)
				return
			}
			contract.LogFatal("Cannot load team overview", err)
		}
		if err := outwriter.WriteTeamOverview(results, cfg); err != nil {
			contract.LogFatal("Cannot write team overview", err)
		}
	},
}
