package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huangsam/talentview/core"
	"github.com/huangsam/talentview/internal/apiclient"
	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/internal/outwriter"
)

// brutalCmd shows the team aggregate metrics plus the analysis narrative.
var brutalCmd = &cobra.Command{
	Use:   "brutal [cycle]",
	Short: "Show team-wide brutal facts metrics and analysis.",
	Long: `Fetch the team's aggregate evaluation metrics (averages, assessment
counts, completion rate) together with the written team analysis for the
cycle. Both are fetched concurrently; when the analysis does not exist yet,
the metrics still render on their own.

Examples:
  # Brutal facts for the 2025.1 cycle
  talentview brutal 2025.1

  # Export the metrics row to CSV
  talentview brutal 2025.1 --output csv --output-file brutal.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		output, err := core.GetBrutalFactsResults(rootCtx, cfg, client)
		if err != nil {
			if apiclient.IsDataAbsent(err) {
				reportDataAbsent(err)
				return
			}
			contract.LogFatal("Cannot load brutal facts", err)
		}
		if err := outwriter.WriteBrutalFacts(output, cfg); err != nil {
			contract.LogFatal("Cannot write brutal facts", err)
		}
	},
}
