package domain

import (
	"errors"
	"time"
	"unicode/utf8"
)

// Movie-specific validation errors
var (
	// ErrMovieTitleEmpty is returned when a movie title is empty.
	ErrMovieTitleEmpty = errors.New("movie title cannot be empty")

	// ErrMovieTitleTooLong is returned when a movie title exceeds MaxTitleLength.
	ErrMovieTitleTooLong = errors.New("movie title is too long")

	// ErrMovieGenreEmpty is returned when a movie genre is empty.
	ErrMovieGenreEmpty = errors.New("movie genre cannot be empty")

	// ErrMovieRatingRange is returned when a rating is outside [0, 10].
	ErrMovieRatingRange = errors.New("movie rating must be between 0 and 10")
)

// MaxTitleLength is the longest title the catalog accepts.
const MaxTitleLength = 200

// Movie represents one entry in the movie catalog.
type Movie struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	ReleaseDate time.Time `json:"releaseDate"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewMovie creates a new Movie with the given attributes and sets the
// creation/update timestamps. The ID is assigned by the store on insert.
// Returns an error if validation fails.
func NewMovie(title, genre string, releaseDate time.Time, rating float64) (*Movie, error) {
	now := time.Now().UTC()
	movie := &Movie{
		Title:       title,
		Genre:       genre,
		ReleaseDate: releaseDate,
		Rating:      rating,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := movie.Validate(); err != nil {
		return nil, err
	}

	return movie, nil
}

// Validate checks if the Movie has valid data.
// Returns an error if any field fails validation.
func (m *Movie) Validate() error {
	if m.Title == "" {
		return ErrMovieTitleEmpty
	}

	// Counted in characters, matching the database check constraint.
	if utf8.RuneCountInString(m.Title) > MaxTitleLength {
		return ErrMovieTitleTooLong
	}

	if m.Genre == "" {
		return ErrMovieGenreEmpty
	}

	if m.Rating < 0 || m.Rating > 10 {
		return ErrMovieRatingRange
	}

	return nil
}
