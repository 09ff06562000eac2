package server

import (
	"fmt"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"

	"github.com/embedviz/embedviz/pkg/auth"
	"github.com/embedviz/embedviz/pkg/models"
)

const ReadHeaderTimeout = 5 * time.Second

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) *http.Server {
	router := setupRouter(appState)
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", appState.Config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

func setupRouter(appState *models.AppState) *chi.Mux {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(SendVersion)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route(appState.Config.Server.APIPrefix, func(r chi.Router) {
		r.Get("/health", HealthCheckHandler)

		r.Group(func(r chi.Router) {
			if appState.Config.Auth.Required {
				log.Info("JWT authentication required")
				tokenAuth := auth.NewTokenAuth(appState.Config)
				r.Use(jwtauth.Verifier(tokenAuth))
				r.Use(jwtauth.Authenticator(tokenAuth))
			}
			if appState.Config.RateLimit.Enabled {
				log.Infof("rate limiting enabled: %d requests per minute",
					appState.Config.RateLimit.RequestsPerMinute)
				r.Use(RateLimit(appState))
			}
			r.Use(TrackUsage(appState))

			r.Post("/visualize", VisualizeHandler(appState))
		})
	})

	return router
}
