// Package simulation implements the Monte Carlo random-walk price simulation.
package simulation

import (
	"context"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/bobmcallan/vire-openbb/internal/common"
	"github.com/bobmcallan/vire-openbb/internal/market"
	"github.com/cockroachdb/errors"
)

// Fixed volatility-adjustment policy: damp drift, amplify volatility.
const (
	adjustedMeanScale = 0.8
	adjustedStdScale  = 1.2
)

// ErrNoData is returned when the provider has no history for the ticker and range.
var ErrNoData = errors.New("No data available for the specified ticker and date range")

// Request describes one simulation run. Sizes are taken as given: callers
// supply them from configuration.
type Request struct {
	Ticker                  string
	StartDate               string // YYYY-MM-DD
	UseVolatilityAdjustment bool
	NumSimulations          int
	NumDays                 int
}

// Params are the Gaussian parameters of the daily simple-return model.
type Params struct {
	Mean   float64
	StdDev float64
}

// Simulator runs requests against a market data provider.
type Simulator struct {
	provider market.Provider
	logger   *common.Logger
	seed     uint64
	now      func() time.Time
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithSeed makes every run draw from a PCG source seeded with seed, so
// identical requests against identical history produce identical paths.
// Zero keeps per-run entropy seeding.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) { s.seed = seed }
}

// WithClock overrides the end-of-history clock.
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) { s.now = now }
}

// New creates a Simulator.
func New(provider market.Provider, logger *common.Logger, opts ...Option) *Simulator {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	s := &Simulator{provider: provider, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) newRand() *rand.Rand {
	if s.seed != 0 {
		return rand.New(rand.NewPCG(s.seed, s.seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Run fetches history from req.StartDate through today and returns
// req.NumSimulations price paths of req.NumDays+1 prices each.
func (s *Simulator) Run(ctx context.Context, req Request) ([][]float64, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid start_date %q (expected YYYY-MM-DD)", req.StartDate)
	}
	// History runs up to, but not including, today's date.
	now := s.now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	bars, err := s.provider.History(ctx, strings.TrimSpace(req.Ticker), start, end)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, ErrNoData
	}

	closes := market.Closes(bars)
	returns := DailyReturns(closes)
	if len(returns) == 0 {
		return nil, errors.Mark(errors.Newf("only one closing price for %s since %s; at least two are required", req.Ticker, req.StartDate), ErrNoData)
	}

	params := EstimateParams(returns, req.UseVolatilityAdjustment)
	lastPrice := closes[len(closes)-1]

	s.logger.Debug().
		Str("ticker", req.Ticker).
		Int("bars", len(bars)).
		Float64("mean", params.Mean).
		Float64("stddev", params.StdDev).
		Float64("last_price", lastPrice).
		Bool("adjusted", req.UseVolatilityAdjustment).
		Msg("simulation parameters estimated")

	return SimulatePaths(s.newRand(), lastPrice, params, req.NumSimulations, req.NumDays), nil
}

func validate(req Request) error {
	if strings.TrimSpace(req.Ticker) == "" {
		return errors.New("ticker is required")
	}
	if req.NumSimulations <= 0 {
		return errors.Newf("num_simulations must be positive (got %d)", req.NumSimulations)
	}
	if req.NumDays < 0 {
		return errors.Newf("num_days must not be negative (got %d)", req.NumDays)
	}
	return nil
}

// DailyReturns computes simple returns close[i]/close[i-1] - 1. The result
// has one element fewer than closes.
func DailyReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	out := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		out[i-1] = closes[i]/closes[i-1] - 1
	}
	return out
}

// MeanStdDev returns the mean and population (uncorrected) standard deviation.
func MeanStdDev(xs []float64) (mean, std float64) {
	if len(xs) == 0 {
		return math.NaN(), math.NaN()
	}
	n := float64(len(xs))
	for _, x := range xs {
		mean += x
	}
	mean /= n

	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / n)
}

// EstimateParams fits the return model, applying the adjustment policy when adjust is set.
func EstimateParams(returns []float64, adjust bool) Params {
	mean, std := MeanStdDev(returns)
	if adjust {
		mean *= adjustedMeanScale
		std *= adjustedStdScale
	}
	return Params{Mean: mean, StdDev: std}
}

// SimulatePaths compounds Gaussian daily returns from lastPrice. Paths are
// generated in index order and each path draws its days in order, so the
// output depends only on rng's sequence.
func SimulatePaths(rng *rand.Rand, lastPrice float64, p Params, numSimulations, numDays int) [][]float64 {
	paths := make([][]float64, numSimulations)
	for i := range paths {
		path := make([]float64, numDays+1)
		path[0] = lastPrice
		for t := 1; t <= numDays; t++ {
			r := p.Mean + p.StdDev*rng.NormFloat64()
			path[t] = path[t-1] * (1 + r)
		}
		paths[i] = path
	}
	return paths
}
