package mcp

import (
	"context"
	"encoding/json"

	"github.com/bobmcallan/vire-openbb/internal/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// VersionTool returns the mcp.Tool definition for get_version.
func VersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the docs MCP server version. Use this to verify connectivity."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// VersionToolHandler reports the build's version, build time and commit.
func VersionToolHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := json.Marshal(config.GetVersionInfo())
		if err != nil {
			return mcp.NewToolResultError("failed to marshal version info"), nil
		}
		return mcp.NewToolResultText(string(out)), nil
	}
}
