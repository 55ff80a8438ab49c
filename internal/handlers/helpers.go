// Package handlers implements the HTTP endpoints of the widget and docs services.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
)

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method || (method == http.MethodGet && r.Method == http.MethodHead) {
		return true
	}
	w.Header().Set("Allow", method)
	WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	return false
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes {"error": message}, the shape widget clients render.
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// ParseBool accepts true/false, 1/0, yes/no and on/off in any case.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	}
	return false, errors.Newf("invalid boolean %q", s)
}

// queryBool reads a boolean query parameter, returning def when absent.
func queryBool(r *http.Request, name string, def bool) (bool, error) {
	raw, ok := r.URL.Query()[name]
	if !ok || len(raw) == 0 {
		return def, nil
	}
	v, err := ParseBool(raw[0])
	if err != nil {
		return false, errors.Wrapf(err, "query parameter %s", name)
	}
	return v, nil
}

// queryString reads a string query parameter, returning def when absent or empty.
func queryString(r *http.Request, name, def string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return def
}
