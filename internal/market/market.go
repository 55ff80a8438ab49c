// Package market retrieves daily price history for the simulation widget.
package market

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bobmcallan/vire-openbb/internal/common"
	"github.com/bobmcallan/vire-openbb/internal/config"
	"github.com/cockroachdb/errors"
)

// maxResponseSize caps provider responses; ten years of daily bars is well under this.
const maxResponseSize = 20 << 20

// ErrUpstream marks failures talking to a market data provider.
var ErrUpstream = errors.New("market data provider request failed")

// Bar is a single trading day.
type Bar struct {
	Date     time.Time `json:"date"`
	Open     float64   `json:"open"`
	High     float64   `json:"high"`
	Low      float64   `json:"low"`
	Close    float64   `json:"close"`
	AdjClose float64   `json:"adjusted_close"`
	Volume   int64     `json:"volume"`
}

// Price returns the split and dividend adjusted close, falling back to the raw close.
func (b Bar) Price() float64 {
	if b.AdjClose > 0 {
		return b.AdjClose
	}
	return b.Close
}

// Closes extracts adjusted closing prices in date order.
func Closes(bars []Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Price()
	}
	return out
}

// Provider returns daily bars for ticker in [start, end), oldest first.
// A ticker with no data in range yields an empty slice and a nil error.
type Provider interface {
	Name() string
	History(ctx context.Context, ticker string, start, end time.Time) ([]Bar, error)
}

// NewProvider builds the provider selected by cfg.Provider.
func NewProvider(cfg config.MarketConfig, logger *common.Logger) (Provider, error) {
	client := &http.Client{Timeout: cfg.GetTimeout()}
	switch strings.ToLower(cfg.Provider) {
	case "", "yahoo":
		return NewYahooProvider(cfg.BaseURL, client, logger), nil
	case "eodhd":
		return NewEODHDProvider(cfg.BaseURL, cfg.APIKey, client, logger), nil
	default:
		return nil, errors.Newf("unknown market data provider %q", cfg.Provider)
	}
}

// httpGetter is the request plumbing shared by the providers.
type httpGetter struct {
	name       string
	httpClient *http.Client
	logger     *common.Logger
	userAgent  string
}

// get performs a GET and returns the body and status code. Transport failures
// are marked ErrUpstream; status handling is left to the caller.
func (g *httpGetter) get(ctx context.Context, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "%s: building request", g.name)
	}
	req.Header.Set("Accept", "application/json")
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		g.logger.Error().Str("provider", g.name).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("market data request failed")
		return nil, 0, errors.Mark(errors.Wrapf(err, "%s request failed", g.name), ErrUpstream)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, resp.StatusCode, errors.Mark(errors.Wrapf(err, "%s: reading response", g.name), ErrUpstream)
	}

	g.logger.Debug().Str("provider", g.name).Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("market data response")

	return body, resp.StatusCode, nil
}

// statusError builds an ErrUpstream-marked error for a non-2xx response.
func statusError(provider string, status int, body []byte) error {
	snippet := strings.TrimSpace(string(body))
	if len(snippet) > 200 {
		snippet = snippet[:200]
	}
	return errors.Mark(errors.Newf("%s returned %d: %s", provider, status, snippet), ErrUpstream)
}
