package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/refarch/movies-api/internal/version"
)

// VersionHandler serves the build version of the running binary.
//
// The version endpoint predates the response envelope and its bare
// {"version": "..."} shape is published API surface, so it does not use
// the envelope.
type VersionHandler struct{}

// NewVersionHandler creates a new VersionHandler.
func NewVersionHandler() *VersionHandler {
	return &VersionHandler{}
}

// Get handles GET /version requests.
func (h *VersionHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(VersionResponse{Version: version.Version}); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode version response",
			slog.Any("error", err))
	}
}
