package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huangsam/talentview/core"
	"github.com/huangsam/talentview/internal/apiclient"
	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/internal/outwriter"
	"github.com/huangsam/talentview/schema"
)

// exportCmd writes the cycle's datasets to files in one pass.
var exportCmd = &cobra.Command{
	Use:   "export [cycle]",
	Short: "Export the cycle's datasets to files.",
	Long: `Write the brutal facts metrics, the team analysis, the collaborator
listing, and the team historical performance to separate files in the current
directory. File names follow the <dataset>-<cycle>.<ext> convention; the
historical trend spans all cycles and is written cycle-free.

Only csv and json output formats are supported; csv is the default.

Examples:
  # brutal-facts-2025.1.csv, team-analysis-2025.1.csv, collaborators-2025.1.csv,
  # team-historical-performance.csv
  talentview export 2025.1

  # Same datasets as JSON
  talentview export 2025.1 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		mode := cfg.Output
		if mode == schema.TextOut {
			mode = schema.CSVOut
		}

		brutal, err := core.GetBrutalFactsResults(rootCtx, cfg, client)
		if err != nil {
			if apiclient.IsDataAbsent(err) {
				reportDataAbsent(err)
				return
			}
			contract.LogFatal("Cannot load brutal facts for export", err)
		}

		results, err := core.GetTeamOverviewResults(rootCtx, cfg, client)
		if err != nil && !apiclient.IsDataAbsent(err) {
			contract.LogFatal("Cannot load team overview for export", err)
		}

		brutalCfg := cfg.Clone()
		brutalCfg.Output = mode
		brutalCfg.OutputFile = outwriter.ExportFileName("brutal-facts", cfg.Cycle, mode)
		if err := outwriter.WriteBrutalFacts(brutal, brutalCfg); err != nil {
			contract.LogFatal("Cannot export brutal facts", err)
		}

		if brutal.Analysis != nil {
			analysisCfg := cfg.Clone()
			analysisCfg.Output = mode
			analysisCfg.OutputFile = outwriter.ExportFileName("team-analysis", cfg.Cycle, mode)
			if err := outwriter.WriteTeamAnalysis(brutal.Analysis, analysisCfg); err != nil {
				contract.LogFatal("Cannot export team analysis", err)
			}
		} else {
			fmt.Println("Skipping team analysis export: no analysis for this cycle.")
		}

		if len(results) > 0 {
			teamCfg := cfg.Clone()
			teamCfg.Output = mode
			teamCfg.OutputFile = outwriter.ExportFileName("collaborators", cfg.Cycle, mode)
			if err := outwriter.WriteTeamOverview(results, teamCfg); err != nil {
				contract.LogFatal("Cannot export collaborators", err)
			}
		} else {
			fmt.Println("Skipping collaborator export: no collaborators for this cycle.")
		}

		history, err := core.GetTeamHistoryResults(rootCtx, client)
		if err != nil && !apiclient.IsDataAbsent(err) {
			contract.LogFatal("Cannot load team history for export", err)
		}
		if history != nil && len(history.Cycles) > 0 {
			historyCfg := cfg.Clone()
			historyCfg.Output = mode
			// The trend spans all cycles, so its file name carries no cycle.
			historyCfg.OutputFile = outwriter.ExportFileName("team-historical-performance", "", mode)
			if err := outwriter.WriteTeamHistory(history, historyCfg); err != nil {
				contract.LogFatal("Cannot export team history", err)
			}
		} else {
			fmt.Println("Skipping team history export: no historical data yet.")
		}
	},
}
