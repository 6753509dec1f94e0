package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/refarch/movies-api/internal/api/shared"
	"github.com/refarch/movies-api/internal/platform/logger"
)

// Correlation establishes the per-request correlation id. It reads the
// CorrelationId header when present and valid, generates a fresh UUID
// otherwise, binds the id into the request context, and echoes it on the
// response.
//
// The response header is set before the rest of the pipeline runs, so even
// error responses and streamed responses carry it deterministically. This
// middleware should be applied early in the chain so that all subsequent
// handlers have access to the id.
func Correlation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := shared.CorrelationIDFromRequest(r)
		if !ok {
			id = uuid.New()
		}

		// Headers are mutable until the first WriteHeader, so setting the
		// echo here covers every downstream outcome.
		w.Header().Set(shared.CorrelationIDHeader, id.String())

		ctx := shared.WithCorrelationID(r.Context(), id)

		// Attach the id to the request-scoped logger so every log line in
		// this request can be correlated.
		log := slog.With(slog.String("correlation_id", id.String()))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
