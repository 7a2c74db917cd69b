package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/tsawler/labscan/internal/tool"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the labscan tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := tool.NewServer(version, tool.New(a.catalog, a.pipeline))
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
