package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"

	"seotitles/internal/handlers"
	"seotitles/internal/handlers/api"
	"seotitles/internal/metrics"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(generator handlers.Generator) {
	metrics.Init()

	// Initialize handlers
	titleHandler := handlers.NewTitleHandler(generator, s.Cfg)
	probeHandler := handlers.NewProbeHandler(s.Cfg)
	titlesAPI := api.NewTitlesHandler(generator)

	// Frontend routes
	s.App.Get("/", titleHandler.Index)
	s.App.Post("/", titleHandler.Generate)

	// JSON API
	s.App.Post("/api/v1/titles", titlesAPI.Create)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}
