package docs

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/bobmcallan/vire-openbb/internal/common"
	"github.com/bobmcallan/vire-openbb/internal/observability"
	"github.com/cockroachdb/errors"
)

// maxDocumentSize caps a fetched document.
const maxDocumentSize = 10 << 20

// errorPrefix starts every failure string returned to tool callers.
const errorPrefix = "Error fetching documentation: "

// Fetcher retrieves catalog documents over HTTP. Failures are reported as
// text, never as errors, so callers can hand the result straight back to the
// tool client.
type Fetcher struct {
	httpClient *http.Client
	logger     *common.Logger
	metrics    *observability.Metrics
	maxBytes   int64
}

// NewFetcher creates a Fetcher. A zero timeout leaves requests unbounded.
func NewFetcher(timeout time.Duration, logger *common.Logger, metrics *observability.Metrics) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		metrics:    metrics,
		maxBytes:   maxDocumentSize,
	}
}

// Fetch performs a single GET of the entry's source URL and returns the body
// verbatim, or "Error fetching documentation: <detail>" on any failure.
func (f *Fetcher) Fetch(ctx context.Context, e Entry) string {
	start := time.Now()
	body, err := f.get(ctx, e.SourceURL)
	duration := time.Since(start)

	f.metrics.RecordDocFetch(e.ToolName(), err == nil)
	if err != nil {
		f.logger.Warn().
			Str("tool", e.ToolName()).
			Str("url", e.SourceURL).
			Int64("duration_ms", duration.Milliseconds()).
			Str("error", err.Error()).
			Msg("documentation fetch failed")
		return errorPrefix + err.Error()
	}

	f.logger.Debug().
		Str("tool", e.ToolName()).
		Int("bytes", len(body)).
		Int64("duration_ms", duration.Milliseconds()).
		Msg("documentation fetched")
	return string(body)
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, statusError(resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > f.maxBytes {
		return nil, errors.Newf("document exceeds %d bytes for url: %s", f.maxBytes, rawURL)
	}
	return body, nil
}

// statusError describes an HTTP failure as "404 Client Error: Not Found for url: ...".
func statusError(status int, rawURL string) error {
	kind := "Client"
	if status >= 500 {
		kind = "Server"
	}
	return errors.Newf("%d %s Error: %s for url: %s", status, kind, http.StatusText(status), rawURL)
}
