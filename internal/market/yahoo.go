package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata" // exchange zones on hosts without a zoneinfo database

	"github.com/bobmcallan/vire-openbb/internal/common"
	"github.com/cockroachdb/errors"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooProvider reads daily history from the Yahoo Finance v8 chart API.
type YahooProvider struct {
	baseURL string
	getter  *httpGetter
}

// NewYahooProvider creates a provider. An empty baseURL uses the public endpoint.
func NewYahooProvider(baseURL string, client *http.Client, logger *common.Logger) *YahooProvider {
	if baseURL == "" {
		baseURL = defaultYahooBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &YahooProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		getter: &httpGetter{
			name:       "yahoo",
			httpClient: client,
			logger:     logger,
			// The chart API rejects requests without a browser-like agent.
			userAgent: "Mozilla/5.0 (compatible; vire-openbb/1.0)",
		},
	}
}

// Name implements Provider.
func (p *YahooProvider) Name() string { return "yahoo" }

type yahooChartResponse struct {
	Chart struct {
		Result []yahooChartResult `json:"result"`
		Error  *yahooChartError   `json:"error"`
	} `json:"chart"`
}

type yahooChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type yahooChartMeta struct {
	ExchangeTimezoneName string `json:"exchangeTimezoneName"`
	GMTOffset            int    `json:"gmtoffset"`
}

// location returns the exchange's zone, falling back to its fixed GMT offset
// and then to UTC.
func (m yahooChartMeta) location() *time.Location {
	if m.ExchangeTimezoneName != "" {
		if loc, err := time.LoadLocation(m.ExchangeTimezoneName); err == nil {
			return loc
		}
	}
	if m.GMTOffset != 0 {
		return time.FixedZone("", m.GMTOffset)
	}
	return time.UTC
}

type yahooChartResult struct {
	Meta       yahooChartMeta `json:"meta"`
	Timestamp  []int64        `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*int64   `json:"volume"`
		} `json:"quote"`
		AdjClose []struct {
			AdjClose []*float64 `json:"adjclose"`
		} `json:"adjclose"`
	} `json:"indicators"`
}

// History implements Provider.
func (p *YahooProvider) History(ctx context.Context, ticker string, start, end time.Time) ([]Bar, error) {
	// Pad the window a day each side; yahooBars trims on the exchange-local date.
	q := url.Values{}
	q.Set("period1", fmt.Sprint(start.AddDate(0, 0, -1).Unix()))
	q.Set("period2", fmt.Sprint(end.AddDate(0, 0, 1).Unix()))
	q.Set("interval", "1d")
	q.Set("events", "div,splits")
	q.Set("includeAdjustedClose", "true")
	rawURL := fmt.Sprintf("%s/v8/finance/chart/%s?%s", p.baseURL, url.PathEscape(ticker), q.Encode())

	body, status, err := p.getter.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	var resp yahooChartResponse
	decodeErr := json.Unmarshal(body, &resp)

	// Unknown or delisted symbols come back as 404 with a "No data found" chart error.
	if decodeErr == nil && resp.Chart.Error != nil {
		if isYahooNoData(resp.Chart.Error) {
			return nil, nil
		}
		return nil, errors.Mark(errors.Newf("yahoo: %s: %s", resp.Chart.Error.Code, resp.Chart.Error.Description), ErrUpstream)
	}
	if status >= 400 {
		return nil, statusError("yahoo", status, body)
	}
	if decodeErr != nil {
		return nil, errors.Mark(errors.Wrap(decodeErr, "yahoo: decoding chart response"), ErrUpstream)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, nil
	}

	return yahooBars(resp.Chart.Result[0], start, end), nil
}

func isYahooNoData(e *yahooChartError) bool {
	d := strings.ToLower(e.Description)
	return strings.Contains(d, "no data found") || strings.Contains(d, "delisted") || e.Code == "Not Found"
}

// yahooBars zips the parallel indicator arrays into bars, dropping days
// without a close and anything outside [start, end). Bars are dated by the
// exchange-local trading day, as midnight UTC of that date.
func yahooBars(r yahooChartResult, start, end time.Time) []Bar {
	if len(r.Indicators.Quote) == 0 {
		return nil
	}
	quote := r.Indicators.Quote[0]
	var adj []*float64
	if len(r.Indicators.AdjClose) > 0 {
		adj = r.Indicators.AdjClose[0].AdjClose
	}

	loc := r.Meta.location()
	bars := make([]Bar, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		closePx := floatAt(quote.Close, i)
		if closePx == nil {
			continue
		}
		local := time.Unix(ts, 0).In(loc)
		date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
		if date.Before(start) || !date.Before(end) {
			continue
		}
		bar := Bar{Date: date, Close: *closePx}
		if v := floatAt(quote.Open, i); v != nil {
			bar.Open = *v
		}
		if v := floatAt(quote.High, i); v != nil {
			bar.High = *v
		}
		if v := floatAt(quote.Low, i); v != nil {
			bar.Low = *v
		}
		if v := floatAt(adj, i); v != nil {
			bar.AdjClose = *v
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			bar.Volume = *quote.Volume[i]
		}
		bars = append(bars, bar)
	}
	return bars
}

func floatAt(values []*float64, i int) *float64 {
	if i < len(values) {
		return values[i]
	}
	return nil
}
