package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bobmcallan/vire-openbb/internal/common"
	"github.com/cockroachdb/errors"
)

const defaultEODHDBaseURL = "https://eodhd.com"

// EODHDProvider reads end-of-day bars from the EODHD API.
type EODHDProvider struct {
	baseURL string
	apiKey  string
	getter  *httpGetter
}

// NewEODHDProvider creates a provider. An empty baseURL uses the public endpoint.
func NewEODHDProvider(baseURL, apiKey string, client *http.Client, logger *common.Logger) *EODHDProvider {
	if baseURL == "" {
		baseURL = defaultEODHDBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &EODHDProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		getter:  &httpGetter{name: "eodhd", httpClient: client, logger: logger},
	}
}

// Name implements Provider.
func (p *EODHDProvider) Name() string { return "eodhd" }

type eodhdBar struct {
	Date          string  `json:"date"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Close         float64 `json:"close"`
	AdjustedClose float64 `json:"adjusted_close"`
	Volume        int64   `json:"volume"`
}

// eodhdSymbol qualifies bare tickers with the US exchange, as EODHD requires an exchange suffix.
func eodhdSymbol(ticker string) string {
	if strings.Contains(ticker, ".") {
		return strings.ToUpper(ticker)
	}
	return strings.ToUpper(ticker) + ".US"
}

// History implements Provider. end is exclusive.
func (p *EODHDProvider) History(ctx context.Context, ticker string, start, end time.Time) ([]Bar, error) {
	q := url.Values{}
	q.Set("from", start.Format("2006-01-02"))
	q.Set("to", end.AddDate(0, 0, -1).Format("2006-01-02"))
	q.Set("period", "d")
	q.Set("fmt", "json")
	q.Set("api_token", p.apiKey)
	rawURL := fmt.Sprintf("%s/api/eod/%s?%s", p.baseURL, url.PathEscape(eodhdSymbol(ticker)), q.Encode())

	body, status, err := p.getter.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status >= 400 {
		return nil, statusError("eodhd", status, body)
	}

	var raw []eodhdBar
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "eodhd: decoding eod response"), ErrUpstream)
	}

	bars := make([]Bar, 0, len(raw))
	for _, r := range raw {
		date, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "eodhd: bad bar date %q", r.Date), ErrUpstream)
		}
		bars = append(bars, Bar{
			Date:     date,
			Open:     r.Open,
			High:     r.High,
			Low:      r.Low,
			Close:    r.Close,
			AdjClose: r.AdjustedClose,
			Volume:   r.Volume,
		})
	}
	return bars, nil
}
