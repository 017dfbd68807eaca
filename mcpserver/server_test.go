package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text, result.IsError
}

func TestHandleDerive(t *testing.T) {
	s := NewMCPServer(nil)

	text, isErr := callTool(t, s.handleDerive, map[string]any{"code": "INTP"})
	require.False(t, isErr, text)

	var got struct {
		Code      string   `json:"code"`
		Stack     []string `json:"stack"`
		Positions []struct {
			Role string `json:"role"`
		} `json:"positions"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.Equal(t, "intp", got.Code)
	assert.Equal(t, []string{"ni", "te", "fi", "se", "ne", "ti", "fe", "si"}, got.Stack)
	require.Len(t, got.Positions, 8)
	assert.Equal(t, "dominant", got.Positions[0].Role)
}

func TestHandleDerive_Errors(t *testing.T) {
	s := NewMCPServer(nil)

	text, isErr := callTool(t, s.handleDerive, map[string]any{"code": "intx"})
	assert.True(t, isErr)
	assert.Contains(t, text, "invalid type code")
	assert.Contains(t, text, "hint:")

	_, isErr = callTool(t, s.handleDerive, map[string]any{})
	assert.True(t, isErr)
}

func TestHandleListTypes(t *testing.T) {
	s := NewMCPServer(nil)

	text, isErr := callTool(t, s.handleListTypes, nil)
	require.False(t, isErr)

	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 16)
	assert.Equal(t, "INTJ  ti ne si fe | te ni se fi", lines[0])
}

func TestHandleDescribe(t *testing.T) {
	s := NewMCPServer(nil)

	text, isErr := callTool(t, s.handleDescribe, map[string]any{"entry": "Te"})
	require.False(t, isErr)
	assert.Equal(t, "extraverted thinking", text)

	_, isErr = callTool(t, s.handleDescribe, map[string]any{"entry": "xx"})
	assert.True(t, isErr)
}
