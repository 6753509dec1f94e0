package api

import (
	_ "embed"
	"log/slog"
	"net/http"
)

// openapiSpec is the API document served to clients. It is the
// authoritative description of the envelope, error codes, and routes;
// internal/api tests load it to keep the implementation honest.
//
//go:embed openapi.yaml
var openapiSpec []byte

// OpenAPISpec returns the embedded OpenAPI document.
func OpenAPISpec() []byte {
	return openapiSpec
}

// ServeOpenAPI handles GET /openapi.yaml requests.
func ServeOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(openapiSpec); err != nil {
		slog.ErrorContext(r.Context(), "failed to write openapi document",
			slog.Any("error", err))
	}
}
