package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateStruct runs the struct validator over v and returns the raw
// validator error. The validator evaluates every rule rather than stopping
// at the first violation, so callers can surface all failures at once.
func ValidateStruct(v interface{}) error {
	return validate.Struct(v)
}

// ValidationErrors extracts the typed violation list from a validator
// error. Returns nil if the error is not a validation error.
func ValidationErrors(err error) validator.ValidationErrors {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		return verrs
	}
	return nil
}
