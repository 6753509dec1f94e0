package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/refarch/movies-api/internal/domain"
	"github.com/refarch/movies-api/internal/store"
)

// defaultListLimit and maxListLimit bound List paging.
const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// PostgresMovieStore implements the store.MovieStore interface
// using a PostgreSQL database as the storage backend.
type PostgresMovieStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMovieStore creates a new PostgreSQL implementation of the
// MovieStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresMovieStore(db store.DBTX, logger *slog.Logger) *PostgresMovieStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMovieStore{
		db:     db,
		logger: logger.With(slog.String("component", "movie_store")),
	}
}

// Ensure PostgresMovieStore implements store.MovieStore interface
var _ store.MovieStore = (*PostgresMovieStore)(nil)

// Create implements store.MovieStore.Create
func (s *PostgresMovieStore) Create(ctx context.Context, movie *domain.Movie) error {
	if err := movie.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO movies (title, genre, release_date, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := s.db.QueryRowContext(ctx, query,
		movie.Title,
		movie.Genre,
		movie.ReleaseDate,
		movie.Rating,
		movie.CreatedAt,
		movie.UpdatedAt,
	).Scan(&movie.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrMovieExists, err)
		}
		s.logger.ErrorContext(ctx, "failed to insert movie",
			slog.String("title", movie.Title),
			slog.Any("error", err))
		return MapError(err)
	}

	return nil
}

// GetByID implements store.MovieStore.GetByID
func (s *PostgresMovieStore) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	query := `
		SELECT id, title, genre, release_date, rating, created_at, updated_at
		FROM movies
		WHERE id = $1`

	var movie domain.Movie
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.ReleaseDate,
		&movie.Rating,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		if errors.Is(MapError(err), store.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", store.ErrMovieNotFound, id)
		}
		s.logger.ErrorContext(ctx, "failed to get movie",
			slog.Int64("movie_id", id),
			slog.Any("error", err))
		return nil, MapError(err)
	}

	return &movie, nil
}

// List implements store.MovieStore.List
func (s *PostgresMovieStore) List(ctx context.Context, params store.ListParams) ([]*domain.Movie, int, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&total); err != nil {
		return nil, 0, MapError(err)
	}

	query := `
		SELECT id, title, genre, release_date, rating, created_at, updated_at
		FROM movies
		ORDER BY id
		LIMIT $1 OFFSET $2`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list movies", slog.Any("error", err))
		return nil, 0, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.WarnContext(ctx, "failed to close rows", slog.Any("error", cerr))
		}
	}()

	movies := make([]*domain.Movie, 0, limit)
	for rows.Next() {
		var movie domain.Movie
		if err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Genre,
			&movie.ReleaseDate,
			&movie.Rating,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		); err != nil {
			return nil, 0, MapError(err)
		}
		movies = append(movies, &movie)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return movies, total, nil
}

// Update implements store.MovieStore.Update
func (s *PostgresMovieStore) Update(ctx context.Context, movie *domain.Movie) error {
	if err := movie.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE movies
		SET title = $1, genre = $2, release_date = $3, rating = $4, updated_at = $5
		WHERE id = $6`

	result, err := s.db.ExecContext(ctx, query,
		movie.Title,
		movie.Genre,
		movie.ReleaseDate,
		movie.Rating,
		movie.UpdatedAt,
		movie.ID,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrMovieExists, err)
		}
		s.logger.ErrorContext(ctx, "failed to update movie",
			slog.Int64("movie_id", movie.ID),
			slog.Any("error", err))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "movie"); err != nil {
		return fmt.Errorf("%w: id %d", store.ErrMovieNotFound, movie.ID)
	}

	return nil
}

// Delete implements store.MovieStore.Delete
func (s *PostgresMovieStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete movie",
			slog.Int64("movie_id", id),
			slog.Any("error", err))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "movie"); err != nil {
		return fmt.Errorf("%w: id %d", store.ErrMovieNotFound, id)
	}

	return nil
}
