package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nileshjoshi/muhurat-api/internal/config"
	"github.com/nileshjoshi/muhurat-api/internal/metrics"
)

// SetupRoutes configures all HTTP routes and returns the router.
func SetupRoutes(handlers *Handlers, cfg *config.Config, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(log),
		RequestIDMiddleware(),
		LoggingMiddleware(log),
		MetricsMiddleware(),
		CORSMiddleware(),
	)

	authWrap := AuthMiddleware(cfg, log)

	r.Get("/health", handlers.HealthCheck)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Public: catalog, panchang and the muhurat search
		r.Get("/activities", handlers.ListActivities)
		r.Get("/panchang/today", handlers.GetTodayPanchang)
		r.Get("/panchang/date/{date}", handlers.GetDatePanchang)
		r.Get("/muhurat/{activity}", handlers.SearchMuhurat)

		// Authenticated: saved selections for the booking hand-off
		r.Group(func(r chi.Router) {
			r.Use(authWrap)
			r.Get("/selections", handlers.ListSelections)
			r.Post("/selections", handlers.CreateSelection)
			r.Delete("/selections/{id}", handlers.DeleteSelection)
			r.Get("/selections/stats", handlers.GetSelectionStats)
		})
	})

	return r
}
