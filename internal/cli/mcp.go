package cli

import (
	"github.com/avgoustis/worklens/internal/tools"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

// mcpCmd starts the MCP server over stdio. Status output is suppressed
// here because stdio carries the protocol.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the worklens MCP server",
	Long:  `Launch an MCP server that lets AI agents generate time reports and list aggregated employee hours via standard tools.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		s := server.NewMCPServer(
			"worklens",
			version,
		)
		tools.Register(s, client)

		return server.ServeStdio(s)
	},
}
