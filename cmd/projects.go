package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huangsam/talentview/core"
	"github.com/huangsam/talentview/internal/apiclient"
	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/internal/outwriter"
)

// projectsCmd lists a subordinate's project assignments.
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Show a subordinate's project assignments.",
	Long: `Fetch the projects a subordinate is assigned to, with their role and
the assignment dates.

Requires --subordinate.

Examples:
  # Project assignments for one subordinate
  talentview projects --subordinate u42`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		projects, err := core.GetProjectsResults(rootCtx, cfg, client)
		if err != nil {
			if apiclient.IsDataAbsent(err) {
				reportDataAbsent(err)
				return
			}
			contract.LogFatal("Cannot load projects", err)
		}
		if err := outwriter.WriteProjects(projects, cfg); err != nil {
			contract.LogFatal("Cannot write projects", err)
		}
	},
}
