package observability

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordHTTPRequest("/", 200, time.Millisecond)
	m.RecordDocFetch("apps_apps", true)
	m.RecordSimulation(false, time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 404 {
		t.Errorf("expected nil metrics handler to 404, got %d", rec.Code)
	}
}

func TestRecordDocFetch(t *testing.T) {
	m := NewMetrics("docs")
	m.RecordDocFetch("apps_apps", true)
	m.RecordDocFetch("apps_apps", false)
	m.RecordDocFetch("apps_apps", false)

	if got := testutil.ToFloat64(m.DocFetches.WithLabelValues("apps_apps", "error")); got != 2 {
		t.Errorf("expected 2 failed fetches, got %v", got)
	}
	if got := testutil.ToFloat64(m.DocFetches.WithLabelValues("apps_apps", "ok")); got != 1 {
		t.Errorf("expected 1 ok fetch, got %v", got)
	}
}

func TestRecordSimulation(t *testing.T) {
	m := NewMetrics("widgets")
	m.RecordSimulation(true, 200*time.Millisecond)

	if got := testutil.ToFloat64(m.Simulations.WithLabelValues("ok")); got != 1 {
		t.Errorf("expected 1 simulation, got %v", got)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := NewMetrics("widgets")
	m.RecordHTTPRequest("/widgets.json", 200, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `vire_openbb_http_requests_total{route="/widgets.json",service="widgets",status="200"} 1`) {
		t.Errorf("metrics output missing request counter:\n%s", body)
	}
}
