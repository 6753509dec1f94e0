package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/refarch/movies-api/internal/apperror"
)

// Response is the single envelope shape returned for every request,
// success or failure. Errors is an empty array on success; Data is null
// on failure unless the handled failure attached contextual data.
type Response struct {
	Data   any                 `json:"data"`
	Errors []apperror.ApiError `json:"errors"`
}

// internalServerErrorMessage is the fixed description used for unhandled
// failures. Clients never see anything else about them.
const internalServerErrorMessage = "Internal Server Error."

// RespondWithData writes the success envelope with the given status code.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data any) {
	writeEnvelope(w, r, status, Response{
		Data:   data,
		Errors: []apperror.ApiError{},
	})
}

// RespondWithError translates a failure into the fixed envelope and writes
// it. It is the last line of defense: it never fails the request further
// and must not run validation or business logic.
//
// A handled failure (*apperror.Error) supplies its status code, its error
// list verbatim, and any attached data. Anything else collapses to 500
// with the single generic error. The failure is logged exactly once,
// together with the exact JSON payload sent to the client; that log entry
// is the only durable record of the failure.
func RespondWithError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		status  int
		payload Response
	)

	var handled *apperror.Error
	if errors.As(err, &handled) {
		status = handled.StatusCode
		payload = Response{
			Data:   handled.Data,
			Errors: handled.Errors,
		}
	} else {
		status = http.StatusInternalServerError
		payload = Response{
			Data: nil,
			Errors: []apperror.ApiError{
				{Code: apperror.CodeInternal, Message: internalServerErrorMessage},
			},
		}
	}

	body, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		// Nothing sensible left to do; fall through to the framework's
		// default error behavior.
		slog.ErrorContext(r.Context(), "failed to marshal error envelope",
			slog.Any("error", marshalErr))
		http.Error(w, internalServerErrorMessage, http.StatusInternalServerError)
		return
	}

	logFailure(r, status, err, handled != nil, body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, werr := w.Write(body); werr != nil {
		slog.ErrorContext(r.Context(), "failed to write error envelope",
			slog.Any("error", werr))
	}
}

// logFailure records the failure exactly once. Unhandled failures log at
// error level with the full underlying error; handled failures log at warn
// level since they are anticipated conditions. Both entries carry the exact
// payload returned to the client.
func logFailure(r *http.Request, status int, err error, handled bool, body []byte) {
	log := slog.Default()
	attrs := []slog.Attr{
		slog.Int("status_code", status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("response_body", string(body)),
	}

	if id, cerr := CorrelationID(r.Context()); cerr == nil {
		attrs = append(attrs, slog.String("correlation_id", id.String()))
	}

	if err != nil {
		attrs = append(attrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	level := slog.LevelError
	if handled {
		level = slog.LevelWarn
	}
	log.LogAttrs(r.Context(), level, "request failed", attrs...)
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode JSON response",
			slog.Any("error", err))
	}
}
