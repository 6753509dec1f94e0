package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/refarch/movies-api/internal/api/shared"
	"github.com/refarch/movies-api/internal/apperror"
	"github.com/refarch/movies-api/internal/platform/logger"
	"github.com/refarch/movies-api/internal/service/auth"
)

// subjectContextKey is the context key for the authenticated subject.
const subjectContextKey shared.ContextKey = "authSubject"

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates Bearer tokens from the Authorization header and
// adds the authenticated subject to the request context. Any failure is a
// handled 401; the response uses the standard envelope.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, apperror.Unauthorized())
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, apperror.Unauthorized())
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			log.Debug("token validation failed", "error", err)
			shared.RespondWithError(w, r, apperror.Unauthorized())
			return
		}

		ctx := context.WithValue(r.Context(), subjectContextKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Subject extracts the authenticated subject from the request context.
// Returns the subject and a boolean indicating if it was found.
func Subject(r *http.Request) (string, bool) {
	subject, ok := r.Context().Value(subjectContextKey).(string)
	return subject, ok
}
