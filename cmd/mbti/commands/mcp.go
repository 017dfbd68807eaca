package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/mbti/logger"
	"github.com/teranos/mbti/mcpserver"
)

// MCPCmd serves the mbti tools over the Model Context Protocol
var MCPCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve mbti tools over MCP (stdio)",
	Long: `Run a Model Context Protocol server on stdin/stdout.

Tools:
  mbti_derive             derive the stack for a type code
  mbti_list_types         all sixteen types
  mbti_describe_function  expand a stack entry such as ni

Logs go to stderr so stdout carries only protocol messages.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcpserver.NewMCPServer(logger.Named("mcp")).Serve()
	},
}
