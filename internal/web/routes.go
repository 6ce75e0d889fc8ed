package web

import (
	"log/slog"
	"net/http"

	"github.com/rook-computer/postermaker/internal/assets"
	"github.com/rook-computer/postermaker/internal/logging"
	"github.com/rook-computer/postermaker/internal/state"
)

// Snapshotter provides the current composer and configuration.
type Snapshotter interface {
	Snapshot() state.State
}

// RegisterAPIV1 registers the public API routes under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, store Snapshotter, logger *slog.Logger) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(store, logger)))
}

// RegisterUI serves the poster form at "/" and its static files under /static/.
func RegisterUI(mux *http.ServeMux, store Snapshotter, logger *slog.Logger) {
	mux.Handle("/static/", http.StripPrefix("/static", http.FileServer(http.FS(assets.WebUI))))
	mux.Handle("/", newUIHandler(store, logger))
}

// NewDefaultMux builds the standard mux:
// - /api/v1/* for the API
// - / for the web UI
func NewDefaultMux(store Snapshotter, logger *slog.Logger) *http.ServeMux {
	logger = logging.Component(logger, "web")
	mux := http.NewServeMux()
	RegisterAPIV1(mux, store, logger)
	RegisterUI(mux, store, logger)
	return mux
}
