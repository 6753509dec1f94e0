// Package store defines the persistence interfaces and error taxonomy used
// by the service and transport layers. Implementations live under
// internal/platform.
package store

import (
	"context"

	"github.com/refarch/movies-api/internal/domain"
)

// ListParams controls paging for List operations.
type ListParams struct {
	// Offset is the number of records to skip.
	Offset int

	// Limit caps the number of records returned. Implementations apply a
	// default when zero and clamp excessive values.
	Limit int
}

// MovieStore defines the persistence operations for movies.
type MovieStore interface {
	// Create inserts a new movie and fills in its assigned ID.
	// Returns ErrMovieExists if a movie with the same title and release
	// date already exists, or ErrInvalidEntity wrapping the validation
	// failure if the movie data is invalid.
	Create(ctx context.Context, movie *domain.Movie) error

	// GetByID retrieves a movie by its unique ID.
	// Returns ErrMovieNotFound if the movie does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Movie, error)

	// List returns movies ordered by ID along with the total count.
	List(ctx context.Context, params ListParams) ([]*domain.Movie, int, error)

	// Update replaces the stored movie identified by movie.ID.
	// Returns ErrMovieNotFound if the movie does not exist.
	Update(ctx context.Context, movie *domain.Movie) error

	// Delete removes a movie by its ID.
	// Returns ErrMovieNotFound if the movie does not exist.
	Delete(ctx context.Context, id int64) error
}
