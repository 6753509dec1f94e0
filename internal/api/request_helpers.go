package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/refarch/movies-api/internal/api/shared"
	"github.com/refarch/movies-api/internal/apperror"
)

// decodeMovieRequest decodes and validates a movie payload. A missing or
// malformed body and every violated field rule come back as one handled
// 400 failure; any other error is unexpected and surfaces as-is.
func decodeMovieRequest(r *http.Request) (*MovieRequest, error) {
	var req MovieRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return nil, apperror.Validation(apperror.ApiError{
			Code:    apperror.CodeBodyRequired,
			Message: "Request body cannot be null or malformed",
		})
	}

	if err := shared.ValidateStruct(&req); err != nil {
		verrs := shared.ValidationErrors(err)
		if verrs == nil {
			return nil, err
		}
		return nil, validateMovieRequest(&req, verrs)
	}

	return &req, nil
}

// pathMovieID extracts the movie id from the URL path. A non-numeric or
// non-positive id is a handled 400 failure.
func pathMovieID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation(apperror.ApiError{
			Code:    apperror.CodeIDInvalid,
			Message: "Movie id must be a positive integer",
		})
	}
	return id, nil
}
