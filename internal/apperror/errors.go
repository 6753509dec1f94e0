// Package apperror defines the application's handled-failure type.
//
// A handled failure is an anticipated error condition that carries its own
// HTTP status code and a structured, ordered list of user-facing errors.
// Anything that is not an *apperror.Error collapses to a generic 500 at the
// response boundary. Dispatch is an explicit errors.As match on the tagged
// type rather than inspection of arbitrary error subtypes.
package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

// ApiError is a single user-facing validation or processing failure.
type ApiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error is the handled-failure variant. It propagates unchanged from the
// point of detection (validation gate, domain logic, store mapping) to the
// response boundary, where its fields are used verbatim.
type Error struct {
	// StatusCode is the HTTP status the response must carry.
	StatusCode int

	// Errors is the ordered list of user-facing failures. Never empty.
	Errors []ApiError

	// Data is optional contextual data echoed into the response envelope.
	Data any
}

// Error implements the error interface.
func (e *Error) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, apiErr := range e.Errors {
		msgs[i] = fmt.Sprintf("%d: %s", apiErr.Code, apiErr.Message)
	}
	return fmt.Sprintf("handled failure (status %d): %s", e.StatusCode, strings.Join(msgs, "; "))
}

// New creates a handled failure with the given status code and errors.
// Panics if no errors are supplied; a handled failure without an error
// list is a programmer error.
func New(statusCode int, errs ...ApiError) *Error {
	if len(errs) == 0 {
		// ALLOW-PANIC: constructor enforcing a non-empty error list
		panic("apperror: handled failure requires at least one ApiError")
	}
	return &Error{StatusCode: statusCode, Errors: errs}
}

// WithData returns a copy of the failure carrying contextual data to be
// echoed into the response envelope.
func (e *Error) WithData(data any) *Error {
	return &Error{StatusCode: e.StatusCode, Errors: e.Errors, Data: data}
}

// Validation creates a 400 handled failure from one or more field errors.
func Validation(errs ...ApiError) *Error {
	return New(http.StatusBadRequest, errs...)
}

// NotFound creates a 404 handled failure.
func NotFound(code int, message string) *Error {
	return New(http.StatusNotFound, ApiError{Code: code, Message: message})
}

// Conflict creates a 409 handled failure.
func Conflict(code int, message string) *Error {
	return New(http.StatusConflict, ApiError{Code: code, Message: message})
}

// Unauthorized creates the fixed 401 handled failure.
func Unauthorized() *Error {
	return New(http.StatusUnauthorized, ApiError{
		Code:    CodeUnauthorized,
		Message: "Unauthorized.",
	})
}
