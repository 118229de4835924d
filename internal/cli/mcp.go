package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AB498/code-context-provider-mcp/internal/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server that lets LLM-powered coding
assistants inspect directory trees and extract source symbols.

The server communicates via stdio (standard MCP transport) and exposes one
tool: get_code_context.

Example:
  code-context mcp`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(os.Stderr, "code-context MCP server\n")

	server := mcp.NewServer("code-context-provider", Version)
	if err := server.Serve(context.Background()); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}
