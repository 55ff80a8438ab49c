package mcp

import (
	"context"

	"github.com/bobmcallan/vire-openbb/internal/docs"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterDocTools registers one zero-argument tool per catalog entry and
// returns the number registered.
func RegisterDocTools(s *server.MCPServer, f *docs.Fetcher, entries []docs.Entry) int {
	for _, e := range entries {
		s.AddTool(BuildDocTool(e), DocToolHandler(f, e))
	}
	return len(entries)
}

// BuildDocTool converts a catalog entry into an mcp.Tool with no parameters.
func BuildDocTool(e docs.Entry) mcp.Tool {
	return mcp.NewTool(e.ToolName(),
		mcp.WithDescription(e.Description),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

// DocToolHandler fetches the entry's document. Fetch failures come back as
// ordinary text content so the client sees the message instead of a protocol
// error.
func DocToolHandler(f *docs.Fetcher, e docs.Entry) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(f.Fetch(ctx, e)), nil
	}
}
