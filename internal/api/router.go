// Package api provides the HTTP API for the cabviz route visualizer.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/cabviz/cabviz/internal/api/handler"
	"github.com/cabviz/cabviz/internal/api/middleware"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version   string
	BuildTime string
	Logger    zerolog.Logger
	Metrics   *middleware.Metrics
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders)

	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime)
	scenarioHandler := handler.NewScenarioHandler()
	evaluateHandler := handler.NewEvaluateHandler()
	diagramHandler := handler.NewDiagramHandler()
	metadataHandler := handler.NewMetadataHandler()

	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)
	renderRateLimit := middleware.RateLimitByIP(middleware.RenderRateLimit)

	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints are unthrottled for probes.
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
		})

		r.Route("/scenarios", func(r chi.Router) {
			r.With(standardRateLimit).Get("/", scenarioHandler.ListScenarios)
			r.Route("/{scenarioId}", func(r chi.Router) {
				r.With(standardRateLimit).Get("/", scenarioHandler.GetScenario)
				r.With(renderRateLimit).Get("/diagram", diagramHandler.RouteDiagram)
				r.With(renderRateLimit).Get("/timeline", diagramHandler.Timeline)
			})
		})

		r.With(standardRateLimit, middleware.RequireJSON).
			Post("/insertions:evaluate", evaluateHandler.Evaluate)

		r.Route("/metadata", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/enums", metadataHandler.GetEnums)
			r.Get("/priority-ranking", metadataHandler.GetPriorityRanking)
		})
	})

	return r
}
