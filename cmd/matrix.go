package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huangsam/talentview/core"
	"github.com/huangsam/talentview/internal/apiclient"
	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/internal/outwriter"
)

// matrixCmd renders the 9-box talent matrix.
var matrixCmd = &cobra.Command{
	Use:   "matrix [cycle]",
	Short: "Show the 9-box talent matrix for a cycle.",
	Long: `Group collaborators into the nine fixed performance/potential cells and
render the grid with a per-cell roster.

A category filter narrows the roster to a single cell by its label.

Examples:
  # Full matrix for the 2025.1 cycle
  talentview matrix 2025.1

  # Only the star corner
  talentview matrix 2025.1 --category Estrela

  # Export all placements to CSV
  talentview matrix 2025.1 --output csv --output-file matrix.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		matrix, err := core.GetTalentMatrixResults(rootCtx, cfg, client)
		if err != nil {
			if apiclient.IsDataAbsent(err) {
				reportDataAbsent(err)
				return
			}
			contract.LogFatal("Cannot load talent matrix", err)
		}
		if err := outwriter.WriteTalentMatrix(matrix, cfg); err != nil {
			contract.LogFatal("Cannot write talent matrix", err)
		}
	},
}
