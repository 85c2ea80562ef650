package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sqlitedb/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with desktop assistants and other MCP-compatible clients. The
assistant gets tools to list databases, run statements, and read results.

Use --port to start an HTTP server instead, which enables:
  - Testing with the MCP Inspector web UI
  - Sharing one data directory with several clients

Examples:
  # Stdio mode (default)
  sqlitedb mcp serve --data-dir ~/dbs

  # HTTP mode (for MCP Inspector, remote access)
  sqlitedb mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "sqlitedb": {
        "command": "/path/to/sqlitedb",
        "args": ["mcp", "serve", "--data-dir", "/path/to/dbs"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Database: databaseService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
