package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/refarch/movies-api/internal/api/shared"
	"github.com/refarch/movies-api/internal/apperror"
	"github.com/refarch/movies-api/internal/domain"
	"github.com/refarch/movies-api/internal/platform/logger"
	"github.com/refarch/movies-api/internal/store"
)

// MovieHandler handles movie-related HTTP requests
type MovieHandler struct {
	movieStore store.MovieStore
	logger     *slog.Logger
}

// NewMovieHandler creates a new MovieHandler
func NewMovieHandler(movieStore store.MovieStore, logger *slog.Logger) *MovieHandler {
	if movieStore == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("movieStore cannot be nil for MovieHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("logger cannot be nil for MovieHandler")
	}

	return &MovieHandler{
		movieStore: movieStore,
		logger:     logger.With(slog.String("component", "movie_handler")),
	}
}

// List handles GET /movies requests with optional offset/limit paging.
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	params := store.ListParams{
		Offset: queryInt(r, "offset", 0),
		Limit:  queryInt(r, "limit", 20),
	}

	movies, total, err := h.movieStore.List(r.Context(), params)
	if err != nil {
		shared.RespondWithError(w, r, h.mapStoreError(err))
		return
	}

	items := make([]MovieResponse, 0, len(movies))
	for _, m := range movies {
		items = append(items, movieToResponse(m))
	}

	log.Debug("listed movies", slog.Int("count", len(items)), slog.Int("total", total))
	shared.RespondWithData(w, r, http.StatusOK, MovieListResponse{
		Items:  items,
		Total:  total,
		Offset: params.Offset,
		Limit:  params.Limit,
	})
}

// Get handles GET /movies/{id} requests.
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathMovieID(r)
	if err != nil {
		shared.RespondWithError(w, r, err)
		return
	}

	movie, err := h.movieStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithError(w, r, h.mapStoreError(err))
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, movieToResponse(movie))
}

// Create handles POST /movies requests. The validation gate runs before
// anything touches the store; a failed gate means no side effects at all.
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, err := decodeMovieRequest(r)
	if err != nil {
		shared.RespondWithError(w, r, err)
		return
	}

	movie, err := domain.NewMovie(req.Title, req.Genre, req.ReleaseDate, req.Rating)
	if err != nil {
		// The gate has already enforced these rules; a failure here is a
		// wiring bug between the request model and the domain rules.
		shared.RespondWithError(w, r, err)
		return
	}

	if err := h.movieStore.Create(r.Context(), movie); err != nil {
		shared.RespondWithError(w, r, h.mapStoreError(err))
		return
	}

	log.Info("movie created",
		slog.Int64("movie_id", movie.ID),
		slog.String("title", movie.Title))
	shared.RespondWithData(w, r, http.StatusCreated, movieToResponse(movie))
}

// Update handles PUT /movies/{id} requests. The URL id is authoritative;
// a body id that disagrees with it is a handled conflict and nothing is
// written downstream.
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := pathMovieID(r)
	if err != nil {
		shared.RespondWithError(w, r, err)
		return
	}

	req, err := decodeMovieRequest(r)
	if err != nil {
		shared.RespondWithError(w, r, err)
		return
	}

	if req.ID != 0 && req.ID != id {
		shared.RespondWithError(w, r, apperror.Validation(apperror.ApiError{
			Code:    apperror.CodeIDMismatch,
			Message: "Movie id in URL and body do not match",
		}))
		return
	}

	existing, err := h.movieStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithError(w, r, h.mapStoreError(err))
		return
	}

	existing.Title = req.Title
	existing.Genre = req.Genre
	existing.ReleaseDate = req.ReleaseDate
	existing.Rating = req.Rating
	existing.UpdatedAt = time.Now().UTC()

	if err := h.movieStore.Update(r.Context(), existing); err != nil {
		shared.RespondWithError(w, r, h.mapStoreError(err))
		return
	}

	log.Info("movie updated", slog.Int64("movie_id", id))
	shared.RespondWithData(w, r, http.StatusOK, movieToResponse(existing))
}

// Delete handles DELETE /movies/{id} requests.
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := pathMovieID(r)
	if err != nil {
		shared.RespondWithError(w, r, err)
		return
	}

	if err := h.movieStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithError(w, r, h.mapStoreError(err))
		return
	}

	log.Info("movie deleted", slog.Int64("movie_id", id))
	shared.RespondWithData(w, r, http.StatusOK, nil)
}

// mapStoreError converts store error taxonomy into handled failures.
// Anything unrecognized stays as-is and collapses to 500 at the boundary.
func (h *MovieHandler) mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrMovieNotFound), errors.Is(err, store.ErrNotFound):
		return apperror.NotFound(apperror.CodeMovieNotFound, "Movie not found")
	case errors.Is(err, store.ErrMovieExists), errors.Is(err, store.ErrDuplicate):
		return apperror.Conflict(apperror.CodeMovieDuplicate, "Movie already exists")
	default:
		return err
	}
}

// queryInt reads an integer query parameter, returning def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
