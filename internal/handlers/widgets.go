package handlers

import (
	"net/http"

	"github.com/bobmcallan/vire-openbb/internal/common"
	"github.com/bobmcallan/vire-openbb/internal/widgets"
)

// InfoMessage is the body of the widget service root endpoint.
const InfoMessage = "Monte Carlo Simulation Widget"

// InfoHandler serves GET /.
type InfoHandler struct{}

// NewInfoHandler creates a new info handler.
func NewInfoHandler() *InfoHandler {
	return &InfoHandler{}
}

func (h *InfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}
	if r.URL.Path != "/" {
		WriteError(w, http.StatusNotFound, "Not Found")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"Info": InfoMessage})
}

// WidgetsHandler serves the widget registry as /widgets.json.
type WidgetsHandler struct {
	registry *widgets.Registry
	logger   *common.Logger
}

// NewWidgetsHandler creates a handler over a built registry.
func NewWidgetsHandler(registry *widgets.Registry, logger *common.Logger) *WidgetsHandler {
	return &WidgetsHandler{registry: registry, logger: logger}
}

// ServeHTTP handles GET /widgets.json.
func (h *WidgetsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, h.registry.All())
}
