package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huangsam/talentview/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Talentview MCP server",
	Long:  `Launch an MCP server that allows AI agents to query team evaluations via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdout clean: it carries the protocol stream in MCP mode.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, client, cacheManager)
	},
}
