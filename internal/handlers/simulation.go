package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/bobmcallan/vire-openbb/internal/chart"
	"github.com/bobmcallan/vire-openbb/internal/common"
	"github.com/bobmcallan/vire-openbb/internal/config"
	"github.com/bobmcallan/vire-openbb/internal/observability"
	"github.com/bobmcallan/vire-openbb/internal/simulation"
	"github.com/bobmcallan/vire-openbb/internal/widgets"
	"github.com/cockroachdb/errors"
)

// Query defaults, matching the widget descriptor's parameter defaults.
const (
	defaultTicker    = "AAPL"
	defaultStartDate = "2023-01-01"
	defaultTheme     = "light"
)

// Simulator runs a Monte Carlo simulation request.
type Simulator interface {
	Run(ctx context.Context, req simulation.Request) ([][]float64, error)
}

// SimulationHandler serves the Monte Carlo widget endpoint.
type SimulationHandler struct {
	simulator Simulator
	sizing    config.SimulationConfig
	logger    *common.Logger
	metrics   *observability.Metrics
}

// NewSimulationHandler creates the widget endpoint. sizing supplies the path
// count and horizon and is passed to the simulator unchanged.
func NewSimulationHandler(sim Simulator, sizing config.SimulationConfig, logger *common.Logger, metrics *observability.Metrics) *SimulationHandler {
	return &SimulationHandler{
		simulator: sim,
		sizing:    sizing,
		logger:    logger,
		metrics:   metrics,
	}
}

// ServeHTTP handles GET /monte_carlo_simulation.
//
// Query: ticker, start_date, use_volatility_adjustment, raw, theme. With
// raw=true the response is the path matrix, otherwise a Plotly figure.
// Simulation failures are reported as 200 {"error": msg} so the widget can
// display them; malformed booleans are rejected with 422.
func (h *SimulationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	adjust, err := queryBool(r, "use_volatility_adjustment", false)
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	raw, err := queryBool(r, "raw", false)
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	req := simulation.Request{
		Ticker:                  strings.TrimSpace(queryString(r, "ticker", defaultTicker)),
		StartDate:               queryString(r, "start_date", defaultStartDate),
		UseVolatilityAdjustment: adjust,
		NumSimulations:          h.sizing.NumSimulations,
		NumDays:                 h.sizing.NumDays,
	}
	theme := queryString(r, "theme", defaultTheme)

	start := time.Now()
	paths, err := h.simulator.Run(r.Context(), req)
	duration := time.Since(start)
	h.metrics.RecordSimulation(err == nil, duration)

	if err != nil {
		h.logger.Warn().
			Str("widget", widgets.MonteCarloID).
			Str("ticker", req.Ticker).
			Str("start_date", req.StartDate).
			Bool("no_data", errors.Is(err, simulation.ErrNoData)).
			Str("error", err.Error()).
			Msg("simulation failed")
		WriteError(w, http.StatusOK, err.Error())
		return
	}

	h.logger.Info().
		Str("widget", widgets.MonteCarloID).
		Str("ticker", req.Ticker).
		Int("paths", len(paths)).
		Bool("raw", raw).
		Int64("duration_ms", duration.Milliseconds()).
		Msg("simulation complete")

	if raw {
		WriteJSON(w, http.StatusOK, paths)
		return
	}
	WriteJSON(w, http.StatusOK, chart.MonteCarlo(req.Ticker, paths, theme))
}
