package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bobmcallan/vire-openbb/internal/common"
)

func newCORSHandler(t *testing.T, policy CORSPolicy) http.Handler {
	t.Helper()
	s := newServer("test", "127.0.0.1:0", common.NewSilentLogger(), nil, policy)
	return s.corsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			t.Error("next handler should not be called for preflight")
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCORS_NoOriginPassesThrough(t *testing.T) {
	handler := newCORSHandler(t, DocsCORS(nil))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/mcp", nil))

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("expected no CORS headers without an Origin")
	}
}

func TestCORS_DocsExposesSessionHeaders(t *testing.T) {
	handler := newCORSHandler(t, DocsCORS(nil))

	req := httptest.NewRequest("POST", "/mcp", nil)
	req.Header.Set("Origin", "https://client.example")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://client.example" {
		t.Errorf("expected echoed origin with credentials, got %q", got)
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Error("expected credentials allowed")
	}
	if got := w.Header().Get("Access-Control-Expose-Headers"); got != "mcp-session-id, mcp-protocol-version" {
		t.Errorf("unexpected expose headers %q", got)
	}
}

func TestCORS_DocsPreflight(t *testing.T) {
	handler := newCORSHandler(t, DocsCORS(nil))

	req := httptest.NewRequest("OPTIONS", "/mcp", nil)
	req.Header.Set("Origin", "https://client.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "content-type, mcp-session-id")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, OPTIONS" {
		t.Errorf("unexpected allow methods %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got != "content-type, mcp-session-id" {
		t.Errorf("expected requested headers echoed, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Max-Age"); got != "86400" {
		t.Errorf("expected max age 86400, got %q", got)
	}
}

func TestCORS_DocsPreflightRejectsMethod(t *testing.T) {
	handler := newCORSHandler(t, DocsCORS(nil))

	req := httptest.NewRequest("OPTIONS", "/mcp", nil)
	req.Header.Set("Origin", "https://client.example")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestCORS_WidgetsAllowList(t *testing.T) {
	handler := newCORSHandler(t, WidgetsCORS([]string{"https://pro.openbb.co"}))

	req := httptest.NewRequest("GET", "/widgets.json", nil)
	req.Header.Set("Origin", "https://pro.openbb.co")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://pro.openbb.co" {
		t.Errorf("expected allowed origin, got %q", got)
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Error("expected credentials allowed")
	}

	req = httptest.NewRequest("GET", "/widgets.json", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("expected no allow-origin for a foreign origin")
	}
	if w.Code != http.StatusOK {
		t.Errorf("simple requests still reach the handler, got %d", w.Code)
	}
}

func TestCORS_WidgetsPreflight(t *testing.T) {
	handler := newCORSHandler(t, WidgetsCORS([]string{"https://pro.openbb.co"}))

	req := httptest.NewRequest("OPTIONS", "/monte_carlo_simulation", nil)
	req.Header.Set("Origin", "https://pro.openbb.co")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected any method allowed, got %d", w.Code)
	}

	req = httptest.NewRequest("OPTIONS", "/monte_carlo_simulation", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected disallowed origin rejected, got %d", w.Code)
	}
}

func TestCORS_WildcardWithoutCredentials(t *testing.T) {
	handler := newCORSHandler(t, CORSPolicy{AllowedOrigins: []string{"*"}})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "https://any.example")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected literal wildcard, got %q", got)
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "" {
		t.Error("expected no credentials header")
	}
}
