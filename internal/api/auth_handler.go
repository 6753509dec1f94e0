package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/refarch/movies-api/internal/api/shared"
	"github.com/refarch/movies-api/internal/apperror"
	"github.com/refarch/movies-api/internal/config"
	"github.com/refarch/movies-api/internal/platform/logger"
	"github.com/refarch/movies-api/internal/service/auth"
)

// AuthHandler handles token issuance for the operator account.
type AuthHandler struct {
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	authConfig       *config.AuthConfig
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	authConfig *config.AuthConfig,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("logger cannot be nil for AuthHandler")
	}

	return &AuthHandler{
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		authConfig:       authConfig,
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /auth/login requests. Credentials are checked against
// the configured operator account; a mismatch is the handled 401 failure,
// indistinguishable from an unknown username.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, apperror.Validation(apperror.ApiError{
			Code:    apperror.CodeBodyRequired,
			Message: "Request body cannot be null or malformed",
		}))
		return
	}

	if err := shared.ValidateStruct(&req); err != nil {
		shared.RespondWithError(w, r, apperror.Unauthorized())
		return
	}

	if req.Username != h.authConfig.AdminUsername {
		log.Debug("login attempt for unknown username")
		shared.RespondWithError(w, r, apperror.Unauthorized())
		return
	}

	if err := h.passwordVerifier.Compare(h.authConfig.AdminPasswordHash, req.Password); err != nil {
		log.Debug("login attempt with wrong password")
		shared.RespondWithError(w, r, apperror.Unauthorized())
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(r.Context(), req.Username)
	if err != nil {
		shared.RespondWithError(w, r, err)
		return
	}

	log.Info("token issued", slog.String("subject", req.Username))
	shared.RespondWithData(w, r, http.StatusOK, LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
	})
}
