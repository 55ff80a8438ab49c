// Package server hosts the HTTP servers for the docs and widget services.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bobmcallan/vire-openbb/internal/app"
	"github.com/bobmcallan/vire-openbb/internal/common"
	"github.com/bobmcallan/vire-openbb/internal/observability"
	"github.com/cockroachdb/errors"
)

// Server manages an HTTP server and its routes.
type Server struct {
	name    string
	router  *http.ServeMux
	server  *http.Server
	logger  *common.Logger
	metrics *observability.Metrics
	cors    CORSPolicy
	routes  map[string]bool
}

func newServer(name, addr string, logger *common.Logger, metrics *observability.Metrics, cors CORSPolicy) *Server {
	return &Server{
		name:    name,
		logger:  logger,
		metrics: metrics,
		cors:    cors,
		routes:  make(map[string]bool),
		server: &http.Server{
			Addr:        addr,
			ReadTimeout: 30 * time.Second,
			IdleTimeout: 120 * time.Second,
		},
	}
}

// NewDocs creates the docs MCP server.
func NewDocs(a *app.DocsApp) *Server {
	s := newServer(app.DocsService, a.Config.Docs.Server.Addr(), a.Logger, a.Metrics, DocsCORS(a.Config.Docs.AllowedOrigins))
	// MCP responses may stream for the life of a session.
	s.server.WriteTimeout = 0
	s.router = s.docsRoutes(a)
	s.server.Handler = s.withMiddleware(s.router)
	return s
}

// NewWidgets creates the simulation widget server.
func NewWidgets(a *app.WidgetsApp) *Server {
	s := newServer(app.WidgetsService, a.Config.Widgets.Server.Addr(), a.Logger, a.Metrics, WidgetsCORS(a.Config.Widgets.AllowedOrigins))
	// Simulations include a market data fetch, so allow well past its timeout.
	s.server.WriteTimeout = a.Config.Market.GetTimeout() + time.Minute
	s.router = s.widgetRoutes(a)
	s.server.Handler = s.withMiddleware(s.router)
	return s
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info().
		Str("service", s.name).
		Str("address", s.server.Addr).
		Str("url", fmt.Sprintf("http://%s", s.server.Addr)).
		Msg("HTTP server starting")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "server failed")
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Str("service", s.name).Msg("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "server shutdown failed")
	}

	s.logger.Info().Str("service", s.name).Msg("HTTP server stopped")
	return nil
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}
