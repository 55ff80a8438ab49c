// Package mcp serves the documentation catalog as MCP tools over the
// streamable HTTP transport.
package mcp

import (
	"net/http"

	"github.com/bobmcallan/vire-openbb/internal/common"
	"github.com/bobmcallan/vire-openbb/internal/config"
	"github.com/bobmcallan/vire-openbb/internal/docs"
	"github.com/bobmcallan/vire-openbb/internal/observability"
	"github.com/cockroachdb/errors"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// ServerName is the name reported during MCP initialization.
const ServerName = "OpenBB Docs MCP"

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	mcp        *mcpserver.MCPServer
	streamable *mcpserver.StreamableHTTPServer
	logger     *common.Logger
	entries    []docs.Entry
}

// NewHandler validates the catalog and registers a tool per entry plus
// get_version. Sessions are stateful so clients receive an Mcp-Session-Id.
func NewHandler(cfg *config.Config, logger *common.Logger, metrics *observability.Metrics) (*Handler, error) {
	entries := docs.Catalog()
	if err := docs.Validate(entries); err != nil {
		return nil, errors.Wrap(err, "invalid documentation catalog")
	}

	mcpSrv := mcpserver.NewMCPServer(
		ServerName,
		config.GetVersion(),
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)

	fetcher := docs.NewFetcher(cfg.Docs.GetFetchTimeout(), logger, metrics)
	toolCount := RegisterDocTools(mcpSrv, fetcher, entries)
	mcpSrv.AddTool(VersionTool(), VersionToolHandler())

	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv)

	logger.Info().
		Int("tools", toolCount).
		Msg("MCP handler initialized")

	return &Handler{
		mcp:        mcpSrv,
		streamable: streamable,
		logger:     logger,
		entries:    entries,
	}, nil
}

// MCPServer returns the underlying tool server.
func (h *Handler) MCPServer() *mcpserver.MCPServer {
	return h.mcp
}

// Entries returns a copy of the registered catalog.
func (h *Handler) Entries() []docs.Entry {
	result := make([]docs.Entry, len(h.entries))
	copy(result, h.entries)
	return result
}

// ServeHTTP delegates to the mcp-go StreamableHTTPServer.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.streamable.ServeHTTP(w, r)
}
