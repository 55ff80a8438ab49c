package server

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// CORSPolicy describes the cross-origin rules for one service.
type CORSPolicy struct {
	AllowedOrigins   []string // "*" allows any origin
	AllowCredentials bool
	AllowedMethods   []string // empty allows any method
	AllowedHeaders   []string // empty allows any requested header
	ExposedHeaders   []string
	MaxAge           int // seconds
}

// DocsCORS is the docs MCP policy. Browser clients must be able to read the
// MCP session headers.
func DocsCORS(origins []string) CORSPolicy {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return CORSPolicy{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		ExposedHeaders:   []string{"mcp-session-id", "mcp-protocol-version"},
		MaxAge:           86400,
	}
}

// WidgetsCORS is the widget service policy: the configured workspace
// origins, with credentials, any method and header.
func WidgetsCORS(origins []string) CORSPolicy {
	return CORSPolicy{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		MaxAge:           600,
	}
}

func (p CORSPolicy) allowAnyOrigin() bool {
	return slices.Contains(p.AllowedOrigins, "*")
}

func (p CORSPolicy) originAllowed(origin string) bool {
	return p.allowAnyOrigin() || slices.Contains(p.AllowedOrigins, origin)
}

// setOrigin writes the allow-origin headers. A wildcard is echoed as the
// request origin when credentials are allowed, since browsers reject "*"
// on credentialed requests.
func (p CORSPolicy) setOrigin(h http.Header, origin string) {
	if p.allowAnyOrigin() && !p.AllowCredentials {
		h.Set("Access-Control-Allow-Origin", "*")
	} else {
		h.Set("Access-Control-Allow-Origin", origin)
		h.Add("Vary", "Origin")
	}
	if p.AllowCredentials {
		h.Set("Access-Control-Allow-Credentials", "true")
	}
}

// corsMiddleware applies the server's CORS policy. Requests without an
// Origin header pass through untouched.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	p := s.cors
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			s.preflight(w, r, origin)
			return
		}

		if p.originAllowed(origin) {
			p.setOrigin(w.Header(), origin)
			if len(p.ExposedHeaders) > 0 {
				w.Header().Set("Access-Control-Expose-Headers", strings.Join(p.ExposedHeaders, ", "))
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) preflight(w http.ResponseWriter, r *http.Request, origin string) {
	p := s.cors
	h := w.Header()
	reqMethod := r.Header.Get("Access-Control-Request-Method")

	if !p.originAllowed(origin) {
		h.Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Disallowed CORS origin"))
		return
	}
	if len(p.AllowedMethods) > 0 && !slices.Contains(p.AllowedMethods, reqMethod) {
		h.Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Disallowed CORS method"))
		return
	}

	p.setOrigin(h, origin)

	methods := p.AllowedMethods
	if len(methods) == 0 {
		methods = []string{http.MethodDelete, http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPatch, http.MethodPost, http.MethodPut}
	}
	h.Set("Access-Control-Allow-Methods", strings.Join(methods, ", "))

	if len(p.AllowedHeaders) > 0 {
		h.Set("Access-Control-Allow-Headers", strings.Join(p.AllowedHeaders, ", "))
	} else if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
		h.Set("Access-Control-Allow-Headers", requested)
	}

	if p.MaxAge > 0 {
		h.Set("Access-Control-Max-Age", strconv.Itoa(p.MaxAge))
	}

	w.WriteHeader(http.StatusOK)
}
