package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wordpage/internal/handlers"
	"wordpage/internal/handlers/api"
	"wordpage/internal/lookup"
	"wordpage/internal/middleware"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(svc *lookup.Service, pages *lookup.Registry) {
	// Initialize middleware
	pageMiddleware := middleware.NewPageMiddleware(pages)

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(svc, s.Cfg)
	probeHandler := handlers.NewProbeHandler(pages)
	defineHandler := api.NewDefineHandler(svc)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// JSON API
	v1 := s.App.Group("/api/v1")
	v1.Get("/define/:word", defineHandler.Define)
	v1.Get("/random", defineHandler.Random)

	// Page and its lookup triggers
	s.App.Get("/", pageMiddleware.Attach, pageHandler.Index)
	s.App.Get("/search", pageMiddleware.Attach, pageHandler.Search)
	s.App.Get("/random", pageMiddleware.Attach, pageHandler.Random)
}
