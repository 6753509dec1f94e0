package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/refarch/movies-api/internal/apperror"
	"github.com/refarch/movies-api/internal/domain"
)

// Common request/response structures

// MovieRequest defines the payload for the movie create and update endpoints.
// On update, ID (when present) must match the URL id.
type MovieRequest struct {
	ID          int64     `json:"id,omitempty"`
	Title       string    `json:"title"       validate:"required,max=200"`
	Genre       string    `json:"genre"       validate:"required"`
	ReleaseDate time.Time `json:"releaseDate" validate:"required"`
	Rating      float64   `json:"rating"      validate:"gte=0,lte=10"`
}

// MovieResponse defines the representation of a movie returned to clients.
type MovieResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	ReleaseDate time.Time `json:"releaseDate"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MovieListResponse wraps a page of movies with paging metadata.
type MovieListResponse struct {
	Items  []MovieResponse `json:"items"`
	Total  int             `json:"total"`
	Offset int             `json:"offset"`
	Limit  int             `json:"limit"`
}

// LoginRequest defines the payload for the token endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful response for the token endpoint.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   string `json:"expiresAt"`
}

// VersionResponse defines the response for the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}

// movieToResponse converts a domain movie into its API representation.
func movieToResponse(m *domain.Movie) MovieResponse {
	return MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		ReleaseDate: m.ReleaseDate,
		Rating:      m.Rating,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// movieFieldError maps one violated validation rule on MovieRequest to its
// stable error code and message. Codes are published API surface; the
// mapping here must stay in sync with the OpenAPI document.
func movieFieldError(fe validator.FieldError) apperror.ApiError {
	switch fe.StructField() {
	case "Title":
		if fe.Tag() == "max" {
			return apperror.ApiError{
				Code:    apperror.CodeTitleTooLong,
				Message: "Movie Title cannot be longer than 200 characters",
			}
		}
		return apperror.ApiError{
			Code:    apperror.CodeTitleRequired,
			Message: "Movie Title cannot be null or empty",
		}
	case "Genre":
		return apperror.ApiError{
			Code:    apperror.CodeGenreRequired,
			Message: "Movie Genre cannot be null or empty",
		}
	case "ReleaseDate":
		return apperror.ApiError{
			Code:    apperror.CodeReleaseDateFormat,
			Message: "Movie Release Date must be a valid date",
		}
	case "Rating":
		return apperror.ApiError{
			Code:    apperror.CodeRatingOutOfRange,
			Message: "Movie Rating must be between 0 and 10",
		}
	default:
		return apperror.ApiError{
			Code:    apperror.CodeBodyRequired,
			Message: "Request contains an invalid field: " + fe.Field(),
		}
	}
}

// validateMovieRequest runs the validation gate over a decoded movie
// request. Every violated rule is collected, in field order, into one
// handled 400 failure; nothing is short-circuited.
func validateMovieRequest(req *MovieRequest, verrs validator.ValidationErrors) *apperror.Error {
	apiErrs := make([]apperror.ApiError, 0, len(verrs))
	for _, fe := range verrs {
		apiErrs = append(apiErrs, movieFieldError(fe))
	}
	return apperror.Validation(apiErrs...)
}
