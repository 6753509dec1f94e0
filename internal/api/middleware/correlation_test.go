package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/refarch/movies-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelation(t *testing.T) {
	t.Run("echoes_valid_inbound_id", func(t *testing.T) {
		const inbound = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

		var seen uuid.UUID
		handler := Correlation(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := shared.CorrelationID(r.Context())
			require.NoError(t, err)
			seen = id
			w.WriteHeader(http.StatusOK)
		}))

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/movies", nil)
		r.Header.Set(shared.CorrelationIDHeader, inbound)
		handler.ServeHTTP(w, r)

		assert.Equal(t, inbound, w.Header().Get(shared.CorrelationIDHeader))
		assert.Equal(t, inbound, seen.String())
	})

	t.Run("generates_fresh_id_when_absent", func(t *testing.T) {
		handler := Correlation(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/movies", nil))

		echoed := w.Header().Get(shared.CorrelationIDHeader)
		_, err := uuid.Parse(echoed)
		assert.NoError(t, err, "generated id must be a valid UUID")
	})

	t.Run("malformed_inbound_id_is_replaced", func(t *testing.T) {
		handler := Correlation(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/movies", nil)
		r.Header.Set(shared.CorrelationIDHeader, "not-a-uuid")
		handler.ServeHTTP(w, r)

		echoed := w.Header().Get(shared.CorrelationIDHeader)
		assert.NotEqual(t, "not-a-uuid", echoed)
		_, err := uuid.Parse(echoed)
		assert.NoError(t, err)
	})

	t.Run("fresh_ids_differ_across_requests", func(t *testing.T) {
		handler := Correlation(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		seen := make(map[string]bool)
		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/movies", nil))
			id := w.Header().Get(shared.CorrelationIDHeader)
			assert.False(t, seen[id], "id %s repeated", id)
			seen[id] = true
		}
	})

	t.Run("header_present_on_error_responses", func(t *testing.T) {
		handler := Correlation(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/movies", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotEmpty(t, w.Header().Get(shared.CorrelationIDHeader))
	})
}
