package server

import (
	"net/http"

	"github.com/bobmcallan/vire-openbb/internal/app"
	"github.com/bobmcallan/vire-openbb/internal/handlers"
	"github.com/bobmcallan/vire-openbb/internal/widgets"
)

// docsRoutes configures the docs MCP service routes.
func (s *Server) docsRoutes(a *app.DocsApp) *http.ServeMux {
	mux := http.NewServeMux()

	// MCP endpoint (JSON-RPC over streamable HTTP)
	s.handle(mux, "/mcp", a.MCPHandler)

	s.handleAPI(mux, a.HealthHandler, a.VersionHandler)
	s.handleMetrics(mux, a.Config.Metrics.Enabled)

	return mux
}

// widgetRoutes configures the widget service routes. Every registry entry
// must have a handler bound to its endpoint.
func (s *Server) widgetRoutes(a *app.WidgetsApp) *http.ServeMux {
	mux := http.NewServeMux()

	s.handle(mux, "/", a.InfoHandler)
	s.handle(mux, "/widgets.json", a.WidgetsHandler)

	endpoints := map[string]http.Handler{
		widgets.MonteCarloID: a.SimulationHandler,
	}
	for _, id := range a.Registry.IDs() {
		d, _ := a.Registry.Get(id)
		h, ok := endpoints[id]
		if !ok {
			s.logger.Warn().Str("widget", id).Msg("widget has no handler, endpoint not bound")
			continue
		}
		s.handle(mux, d.Endpoint, h)
	}

	s.handleAPI(mux, a.HealthHandler, a.VersionHandler)
	s.handleMetrics(mux, a.Config.Metrics.Enabled)

	return mux
}

func (s *Server) handleAPI(mux *http.ServeMux, health *handlers.HealthHandler, version *handlers.VersionHandler) {
	s.handle(mux, "/api/health", health)
	s.handle(mux, "/api/version", version)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.handleNotFound)
}

func (s *Server) handleMetrics(mux *http.ServeMux, enabled bool) {
	if enabled && s.metrics != nil {
		s.handle(mux, "/metrics", s.metrics.Handler())
	}
}

// handle registers h and records pattern as a metrics route label.
func (s *Server) handle(mux *http.ServeMux, pattern string, h http.Handler) {
	s.routes[pattern] = true
	mux.Handle(pattern, h)
}

// routeLabel bounds metric cardinality to registered patterns.
func (s *Server) routeLabel(path string) string {
	if s.routes[path] {
		return path
	}
	return "other"
}

// handleNotFound returns a JSON 404 for unmatched API routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	handlers.WriteError(w, http.StatusNotFound, "Not Found")
}
