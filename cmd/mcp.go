package cmd

import (
	"context"

	"github.com/pathworks/talentmap/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Talentmap MCP server",
	Long: `Launch an MCP server that allows AI agents to score assessments via
standard tools. The item bank, cluster definitions and style map are
fixed by the server configuration; each tool call supplies an inline
answer set.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Validation output stays on stderr so stdio remains clean
		// for the protocol.
		return sharedSetup(cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(context.Background(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
