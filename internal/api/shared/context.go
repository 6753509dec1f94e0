package shared

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

const (
	// CorrelationIDHeader is the fixed header carrying the correlation id
	// on both requests and responses.
	CorrelationIDHeader = "CorrelationId"

	// correlationIDContextKey is the key for the correlation id in the
	// request context.
	correlationIDContextKey ContextKey = "correlationID"
)

// ErrNoCorrelationID is returned when a correlation id is read from a
// context it was never bound to. Hitting this means the correlation
// middleware is missing from the chain; it is a wiring bug, not a
// user-facing error.
var ErrNoCorrelationID = errors.New("no correlation id bound to context")

// WithCorrelationID binds the correlation id into the context. Exactly one
// id is bound per request and it is immutable afterwards; binding twice is
// a programmer error.
func WithCorrelationID(ctx context.Context, id uuid.UUID) context.Context {
	if _, ok := ctx.Value(correlationIDContextKey).(uuid.UUID); ok {
		// ALLOW-PANIC: double-binding indicates a broken middleware chain
		panic("shared: correlation id already bound to context")
	}
	return context.WithValue(ctx, correlationIDContextKey, id)
}

// CorrelationID returns the correlation id bound to the context, or
// ErrNoCorrelationID if none was bound.
func CorrelationID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(correlationIDContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoCorrelationID
	}
	return id, nil
}

// CorrelationIDFromRequest reads the correlation id header from an inbound
// request. A missing or malformed header is treated as absence, never as an
// error; the caller generates a fresh id in that case.
func CorrelationIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	raw := r.Header.Get(CorrelationIDHeader)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
