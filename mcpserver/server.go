// Package mcpserver exposes type derivation as Model Context Protocol tools
// over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/teranos/mbti/display"
	"github.com/teranos/mbti/errors"
	"github.com/teranos/mbti/logger"
	"github.com/teranos/mbti/mbti"
	"github.com/teranos/mbti/version"
)

const codeHint = "type codes are four letters: i/e, n/s, t/f, j/p (e.g. intp)"

// MCPServer wraps the mbti core and exposes it via Model Context Protocol
type MCPServer struct {
	logger *zap.SugaredLogger
	server *server.MCPServer
}

// NewMCPServer creates an MCP server with the mbti tools registered
func NewMCPServer(log *zap.SugaredLogger) *MCPServer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	s := &MCPServer{logger: log}
	s.server = server.NewMCPServer(
		"mbti",
		version.Get().Version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()
	return s
}

// registerTools registers all MCP tools
func (s *MCPServer) registerTools() {
	deriveTool := mcp.NewTool("mbti_derive",
		mcp.WithDescription("Derive the eight-slot cognitive function stack for a four-letter type code"),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("Type code such as intp or ESFJ"),
		),
	)
	s.server.AddTool(deriveTool, s.handleDerive)

	listTool := mcp.NewTool("mbti_list_types",
		mcp.WithDescription("List all sixteen type codes with their primary and shadow stacks"),
	)
	s.server.AddTool(listTool, s.handleListTypes)

	describeTool := mcp.NewTool("mbti_describe_function",
		mcp.WithDescription("Expand a stack entry such as ni into its full function name"),
		mcp.WithString("entry",
			mcp.Required(),
			mcp.Description("Two-letter stack entry: function (n/s/t/f) followed by attitude (i/e)"),
		),
	)
	s.server.AddTool(describeTool, s.handleDescribe)
}

// handleDerive handles mbti_derive tool calls
func (s *MCPServer) handleDerive(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := mbti.Derive(code)
	if err != nil {
		s.logger.Debugw("Rejected type code", logger.FieldCode, code, logger.FieldError, err)
		return mcp.NewToolResultError(fmt.Sprintf("%v\nhint: %s", err, codeHint)), nil
	}

	data, err := display.MarshalJSON(struct {
		mbti.Result
		Positions []mbti.Position `json:"positions"`
	}{res, res.Positions()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode derivation")
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleListTypes handles mbti_list_types tool calls
func (s *MCPServer) handleListTypes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	for _, code := range mbti.AllCodes() {
		res := mbti.MustDerive(code)
		fmt.Fprintf(&b, "%s  %s\n", res.Upper(), res.Stack)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleDescribe handles mbti_describe_function tool calls
func (s *MCPServer) handleDescribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entry, err := request.RequireString("entry")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	name, err := mbti.DescribeFunction(entry)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(name), nil
}

// Serve starts the MCP server on stdin/stdout
func (s *MCPServer) Serve() error {
	s.logger.Infow("MCP server listening on stdio")
	return server.ServeStdio(s.server)
}

// Listen serves MCP over the given streams until ctx is cancelled
func (s *MCPServer) Listen(ctx context.Context, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s.server).Listen(ctx, in, out)
}
