// Package app wires configuration, logging and handlers for the two services.
package app

import (
	"github.com/bobmcallan/vire-openbb/internal/common"
	"github.com/bobmcallan/vire-openbb/internal/config"
	"github.com/bobmcallan/vire-openbb/internal/handlers"
	"github.com/bobmcallan/vire-openbb/internal/market"
	"github.com/bobmcallan/vire-openbb/internal/mcp"
	"github.com/bobmcallan/vire-openbb/internal/observability"
	"github.com/bobmcallan/vire-openbb/internal/simulation"
	"github.com/bobmcallan/vire-openbb/internal/widgets"
	"github.com/cockroachdb/errors"
)

// Service names, used as the metrics service label and in logs.
const (
	DocsService    = "docs-mcp"
	WidgetsService = "widget-server"
)

// DocsApp holds the components of the documentation MCP service.
type DocsApp struct {
	Config  *config.Config
	Logger  *common.Logger
	Metrics *observability.Metrics

	// HTTP handlers
	HealthHandler  *handlers.HealthHandler
	VersionHandler *handlers.VersionHandler
	MCPHandler     *mcp.Handler
}

// NewDocs initializes the docs service.
func NewDocs(cfg *config.Config, logger *common.Logger) (*DocsApp, error) {
	a := &DocsApp{
		Config:  cfg,
		Logger:  logger,
		Metrics: newMetrics(cfg, DocsService),
	}

	mcpHandler, err := mcp.NewHandler(cfg, logger, a.Metrics)
	if err != nil {
		return nil, err
	}
	a.MCPHandler = mcpHandler
	a.HealthHandler = handlers.NewHealthHandler(logger)
	a.VersionHandler = handlers.NewVersionHandler(logger)

	logger.Info().
		Int("tools", len(mcpHandler.Entries())+1).
		Msg("docs service initialization complete")

	return a, nil
}

// WidgetsApp holds the components of the simulation widget service.
type WidgetsApp struct {
	Config   *config.Config
	Logger   *common.Logger
	Metrics  *observability.Metrics
	Registry *widgets.Registry

	// HTTP handlers
	HealthHandler     *handlers.HealthHandler
	VersionHandler    *handlers.VersionHandler
	InfoHandler       *handlers.InfoHandler
	WidgetsHandler    *handlers.WidgetsHandler
	SimulationHandler *handlers.SimulationHandler
}

// NewWidgets initializes the widget service with the configured market
// data provider.
func NewWidgets(cfg *config.Config, logger *common.Logger) (*WidgetsApp, error) {
	provider, err := market.NewProvider(cfg.Market, logger)
	if err != nil {
		return nil, err
	}
	return NewWidgetsWithProvider(cfg, logger, provider)
}

// NewWidgetsWithProvider initializes the widget service against provider.
func NewWidgetsWithProvider(cfg *config.Config, logger *common.Logger, provider market.Provider) (*WidgetsApp, error) {
	registry, err := widgets.Default()
	if err != nil {
		return nil, errors.Wrap(err, "building widget registry")
	}

	a := &WidgetsApp{
		Config:   cfg,
		Logger:   logger,
		Metrics:  newMetrics(cfg, WidgetsService),
		Registry: registry,
	}

	var opts []simulation.Option
	if cfg.Simulation.Seed != 0 {
		opts = append(opts, simulation.WithSeed(cfg.Simulation.Seed))
	}
	sim := simulation.New(provider, logger, opts...)

	a.HealthHandler = handlers.NewHealthHandler(logger)
	a.VersionHandler = handlers.NewVersionHandler(logger)
	a.InfoHandler = handlers.NewInfoHandler()
	a.WidgetsHandler = handlers.NewWidgetsHandler(registry, logger)
	a.SimulationHandler = handlers.NewSimulationHandler(sim, cfg.Simulation, logger, a.Metrics)

	logger.Info().
		Str("provider", provider.Name()).
		Strs("widgets", registry.IDs()).
		Msg("widget service initialization complete")

	return a, nil
}

func newMetrics(cfg *config.Config, service string) *observability.Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return observability.NewMetrics(service)
}
