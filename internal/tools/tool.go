// Package tools holds the catalog of MCP tools exposed by vanta-mcp and
// dispatches call requests to them.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool is a single callable capability: its descriptor and its handler.
type Tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}
