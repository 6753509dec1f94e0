package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/refarch/movies-api/internal/api/shared"
	"github.com/refarch/movies-api/internal/domain"
	"github.com/refarch/movies-api/internal/mocks"
	"github.com/refarch/movies-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter mounts the movie handler on a chi router so path
// parameters resolve the same way they do in production.
func newTestRouter(movieStore *mocks.MovieStore) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewMovieHandler(movieStore, logger)

	r := chi.NewRouter()
	r.Get("/api/movies", h.List)
	r.Post("/api/movies", h.Create)
	r.Get("/api/movies/{id}", h.Get)
	r.Put("/api/movies/{id}", h.Update)
	r.Delete("/api/movies/{id}", h.Delete)
	return r
}

func decodeEnvelope(t *testing.T, body []byte) shared.Response {
	t.Helper()
	var resp shared.Response
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func fixedMovie() *domain.Movie {
	release := time.Date(2010, time.July, 16, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Movie{
		ID:          42,
		Title:       "Inception",
		Genre:       "Sci-Fi",
		ReleaseDate: release,
		Rating:      8.8,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestMovieHandler_Create(t *testing.T) {
	t.Run("successful_creation", func(t *testing.T) {
		ms := &mocks.MovieStore{
			CreateFn: func(ctx context.Context, movie *domain.Movie) error {
				movie.ID = 42
				return nil
			},
		}

		body := []byte(`{"title":"Inception","genre":"Sci-Fi","releaseDate":"2010-07-16T00:00:00Z","rating":8.8}`)
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/movies", bytes.NewReader(body))
		newTestRouter(ms).ServeHTTP(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeEnvelope(t, w.Body.Bytes())
		assert.Empty(t, resp.Errors)

		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(42), data["id"])
		assert.Equal(t, "Inception", data["title"])
		assert.Equal(t, 1, ms.Calls.Create)
	})

	t.Run("multibyte_title_within_limit_is_created", func(t *testing.T) {
		ms := &mocks.MovieStore{
			CreateFn: func(ctx context.Context, movie *domain.Movie) error {
				movie.ID = 7
				return nil
			},
		}

		// 150 two-byte characters: under the 200-character limit even
		// though the byte length is 300.
		title := strings.Repeat("é", 150)
		body, err := json.Marshal(map[string]any{
			"title":       title,
			"genre":       "Drama",
			"releaseDate": "2024-07-01T00:00:00Z",
			"rating":      7.5,
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/movies", bytes.NewReader(body))
		newTestRouter(ms).ServeHTTP(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeEnvelope(t, w.Body.Bytes())
		assert.Empty(t, resp.Errors)

		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, title, data["title"])
		assert.Equal(t, 1, ms.Calls.Create)
	})

	t.Run("null_title_is_handled_400_with_no_side_effects", func(t *testing.T) {
		ms := &mocks.MovieStore{}

		body := []byte(`{"title":null,"genre":"Drama","releaseDate":"2024-07-01T00:00:00Z","rating":7.5}`)
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/movies", bytes.NewReader(body))
		newTestRouter(ms).ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w.Body.Bytes())
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, 40003, resp.Errors[0].Code)
		assert.Equal(t, "Movie Title cannot be null or empty", resp.Errors[0].Message)
		assert.Equal(t, 0, ms.Calls.Create, "nothing may be persisted on a failed gate")
	})

	t.Run("all_violations_collected_in_field_order", func(t *testing.T) {
		ms := &mocks.MovieStore{}

		body := []byte(`{"title":"","genre":"","rating":11}`)
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/movies", bytes.NewReader(body))
		newTestRouter(ms).ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w.Body.Bytes())
		require.Len(t, resp.Errors, 4)
		assert.Equal(t, 40003, resp.Errors[0].Code) // title
		assert.Equal(t, 40005, resp.Errors[1].Code) // genre
		assert.Equal(t, 40007, resp.Errors[2].Code) // release date
		assert.Equal(t, 40006, resp.Errors[3].Code) // rating
		assert.Equal(t, 0, ms.Calls.Create)
	})

	t.Run("missing_body_is_handled_400", func(t *testing.T) {
		ms := &mocks.MovieStore{}

		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/movies", http.NoBody)
		newTestRouter(ms).ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w.Body.Bytes())
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, 40001, resp.Errors[0].Code)
	})

	t.Run("duplicate_movie_is_handled_409", func(t *testing.T) {
		ms := &mocks.MovieStore{
			CreateFn: func(ctx context.Context, movie *domain.Movie) error {
				return store.ErrMovieExists
			},
		}

		body := []byte(`{"title":"Inception","genre":"Sci-Fi","releaseDate":"2010-07-16T00:00:00Z","rating":8.8}`)
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/movies", bytes.NewReader(body))
		newTestRouter(ms).ServeHTTP(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeEnvelope(t, w.Body.Bytes())
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, 40901, resp.Errors[0].Code)
	})

	t.Run("unexpected_store_error_collapses_to_500", func(t *testing.T) {
		ms := &mocks.MovieStore{
			CreateFn: func(ctx context.Context, movie *domain.Movie) error {
				return errors.New("write: broken pipe")
			},
		}

		body := []byte(`{"title":"Inception","genre":"Sci-Fi","releaseDate":"2010-07-16T00:00:00Z","rating":8.8}`)
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/movies", bytes.NewReader(body))
		newTestRouter(ms).ServeHTTP(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t,
			`{"data":null,"errors":[{"code":500,"message":"Internal Server Error."}]}`,
			w.Body.String())
	})
}

func TestMovieHandler_Update(t *testing.T) {
	t.Run("url_and_body_id_conflict_is_handled_400", func(t *testing.T) {
		ms := &mocks.MovieStore{}

		body := []byte(`{"id":7,"title":"Inception","genre":"Sci-Fi","releaseDate":"2010-07-16T00:00:00Z","rating":8.8}`)
		w := httptest.NewRecorder()
		r := httptest.NewRequest("PUT", "/api/movies/5", bytes.NewReader(body))
		newTestRouter(ms).ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w.Body.Bytes())
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, 40008, resp.Errors[0].Code)
		assert.Equal(t, 0, ms.Calls.GetByID, "no downstream read on id conflict")
		assert.Equal(t, 0, ms.Calls.Update, "no downstream write on id conflict")
	})

	t.Run("matching_body_id_is_accepted", func(t *testing.T) {
		ms := &mocks.MovieStore{
			GetByIDFn: func(ctx context.Context, id int64) (*domain.Movie, error) {
				return fixedMovie(), nil
			},
		}

		body := []byte(`{"id":42,"title":"Inception","genre":"Thriller","releaseDate":"2010-07-16T00:00:00Z","rating":9.0}`)
		w := httptest.NewRecorder()
		r := httptest.NewRequest("PUT", "/api/movies/42", bytes.NewReader(body))
		newTestRouter(ms).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w.Body.Bytes())
		assert.Empty(t, resp.Errors)
		assert.Equal(t, 1, ms.Calls.Update)

		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Thriller", data["genre"])
	})

	t.Run("unknown_movie_is_handled_404", func(t *testing.T) {
		ms := &mocks.MovieStore{
			GetByIDFn: func(ctx context.Context, id int64) (*domain.Movie, error) {
				return nil, store.ErrMovieNotFound
			},
		}

		body := []byte(`{"title":"Inception","genre":"Sci-Fi","releaseDate":"2010-07-16T00:00:00Z","rating":8.8}`)
		w := httptest.NewRecorder()
		r := httptest.NewRequest("PUT", "/api/movies/42", bytes.NewReader(body))
		newTestRouter(ms).ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeEnvelope(t, w.Body.Bytes())
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, 40401, resp.Errors[0].Code)
		assert.Equal(t, "Movie not found", resp.Errors[0].Message)
	})
}

func TestMovieHandler_Get(t *testing.T) {
	t.Run("successful_get", func(t *testing.T) {
		ms := &mocks.MovieStore{
			GetByIDFn: func(ctx context.Context, id int64) (*domain.Movie, error) {
				assert.Equal(t, int64(42), id)
				return fixedMovie(), nil
			},
		}

		w := httptest.NewRecorder()
		newTestRouter(ms).ServeHTTP(w, httptest.NewRequest("GET", "/api/movies/42", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w.Body.Bytes())
		assert.Empty(t, resp.Errors)
	})

	t.Run("non_numeric_id_is_handled_400", func(t *testing.T) {
		ms := &mocks.MovieStore{}

		w := httptest.NewRecorder()
		newTestRouter(ms).ServeHTTP(w, httptest.NewRequest("GET", "/api/movies/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w.Body.Bytes())
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, 40002, resp.Errors[0].Code)
		assert.Equal(t, 0, ms.Calls.GetByID)
	})

	t.Run("unknown_movie_is_handled_404", func(t *testing.T) {
		ms := &mocks.MovieStore{
			GetByIDFn: func(ctx context.Context, id int64) (*domain.Movie, error) {
				return nil, store.ErrMovieNotFound
			},
		}

		w := httptest.NewRecorder()
		newTestRouter(ms).ServeHTTP(w, httptest.NewRequest("GET", "/api/movies/9", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMovieHandler_List(t *testing.T) {
	t.Run("returns_page_with_metadata", func(t *testing.T) {
		ms := &mocks.MovieStore{
			ListFn: func(ctx context.Context, params store.ListParams) ([]*domain.Movie, int, error) {
				assert.Equal(t, 10, params.Offset)
				assert.Equal(t, 5, params.Limit)
				return []*domain.Movie{fixedMovie()}, 37, nil
			},
		}

		w := httptest.NewRecorder()
		newTestRouter(ms).ServeHTTP(w,
			httptest.NewRequest("GET", "/api/movies?offset=10&limit=5", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w.Body.Bytes())
		assert.Empty(t, resp.Errors)

		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(37), data["total"])
		assert.Equal(t, float64(10), data["offset"])
		items, ok := data["items"].([]any)
		require.True(t, ok)
		assert.Len(t, items, 1)
	})

	t.Run("store_failure_collapses_to_500", func(t *testing.T) {
		ms := &mocks.MovieStore{
			ListFn: func(ctx context.Context, params store.ListParams) ([]*domain.Movie, int, error) {
				return nil, 0, errors.New("dial tcp: connection refused")
			},
		}

		w := httptest.NewRecorder()
		newTestRouter(ms).ServeHTTP(w, httptest.NewRequest("GET", "/api/movies", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestMovieHandler_Delete(t *testing.T) {
	t.Run("successful_delete", func(t *testing.T) {
		ms := &mocks.MovieStore{}

		w := httptest.NewRecorder()
		newTestRouter(ms).ServeHTTP(w, httptest.NewRequest("DELETE", "/api/movies/42", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":null,"errors":[]}`, w.Body.String())
		assert.Equal(t, 1, ms.Calls.Delete)
	})

	t.Run("unknown_movie_is_handled_404", func(t *testing.T) {
		ms := &mocks.MovieStore{
			DeleteFn: func(ctx context.Context, id int64) error {
				return store.ErrMovieNotFound
			},
		}

		w := httptest.NewRecorder()
		newTestRouter(ms).ServeHTTP(w, httptest.NewRequest("DELETE", "/api/movies/9", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
