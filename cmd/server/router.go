package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/refarch/movies-api/internal/api"
	apiMiddleware "github.com/refarch/movies-api/internal/api/middleware"
	"github.com/refarch/movies-api/internal/api/shared"
	"github.com/refarch/movies-api/internal/apperror"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Recovery wraps everything so a panic anywhere below still produces
	// the standard envelope; Correlation runs right after so the recovery
	// response carries the correlation header too.
	r.Use(apiMiddleware.Recovery)
	r.Use(apiMiddleware.Correlation)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Metrics())

	if limit := app.config.Server.RateLimitPerMinute; limit > 0 {
		r.Use(httprate.Limit(
			limit,
			time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				shared.RespondWithError(w, r, apperror.New(
					http.StatusTooManyRequests,
					apperror.ApiError{
						Code:    apperror.CodeTooManyRequests,
						Message: "Too many requests",
					},
				))
			}),
		))
	}

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.jwtService,
		app.passwordVerifier,
		&app.config.Auth,
		app.logger,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	movieHandler := api.NewMovieHandler(app.movieStore, app.logger)
	versionHandler := api.NewVersionHandler()
	healthHandler := api.NewHealthHandler(app.db, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/login", authHandler.Login)
		r.Get("/version", versionHandler.Get)
		r.Get("/openapi.yaml", api.ServeOpenAPI)

		r.Get("/movies", movieHandler.List)
		r.Get("/movies/{id}", movieHandler.Get)

		// Mutations require a token
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/movies", movieHandler.Create)
			r.Put("/movies/{id}", movieHandler.Update)
			r.Delete("/movies/{id}", movieHandler.Delete)
		})
	})

	// Health and metrics endpoints
	r.Get("/health", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
