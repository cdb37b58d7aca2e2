package routes

import (
	"github.com/gofiber/fiber/v3"

	"talent-optimizer/internal/delivery/http/handler"
	"talent-optimizer/internal/delivery/http/middleware"
	"talent-optimizer/internal/ws"
)

// Registry owns every HTTP handler and mounts them on the app.
type Registry struct {
	Health         *handler.HealthHandler
	Recommendation *handler.RecommendationHandler
	Evaluation     *handler.EvaluationHandler
	DomainAnalysis *handler.DomainAnalysisHandler
	Assignment     *handler.AssignmentHandler
	BatchWS        *ws.Handler
	Auth           *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	if r.BatchWS != nil {
		app.Get("/ws/batch", r.BatchWS.HandleBatchWS)
	}

	api := app.Group("/api")
	v1 := api.Group("/v1")
	if r.Auth != nil {
		v1.Use(r.Auth.Middleware())
	}

	r.Recommendation.RegisterRoutes(v1)
	r.Evaluation.RegisterRoutes(v1)
	r.DomainAnalysis.RegisterRoutes(v1)
	r.Assignment.RegisterRoutes(v1)
}
