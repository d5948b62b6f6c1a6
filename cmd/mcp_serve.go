package cmd

import (
	"context"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/devoto-app/devoto/internal/mcptools"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes tracking
tools over stdio transport, so MCP clients can read and log entries.

Available tools:
  - search_entries: Filtered text search over one tracker
  - get_streak: Current and longest consecutive-day streak
  - get_summary: Weekly or monthly totals and distribution
  - get_trend: Recent mood trajectory
  - create_entry: Log a new entry

Example usage in an MCP client config:
  {
    "mcpServers": {
      "devoto": {
        "command": "/path/to/devoto",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Stores are already loaded in PersistentPreRunE
	if registry == nil {
		return cmd.Help()
	}

	server := mcptools.CreateMCPServer(registry, appConfig.DataDir, appConfig.WeekStartDay())

	// Log to stderr (stdout is reserved for MCP protocol)
	log.SetOutput(os.Stderr)
	log.Printf("Starting devoto MCP server (stdio transport)")
	log.Printf("Storage backend: %s", appConfig.Storage)
	log.Printf("Data directory: %s", appConfig.DataDir)

	// Blocks until the transport is closed
	return server.Run(context.Background(), &mcp.StdioTransport{})
}
