package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"talent-optimizer/internal/config"
	"talent-optimizer/internal/delivery/http/handler"
	"talent-optimizer/internal/delivery/http/middleware"
	"talent-optimizer/internal/delivery/http/routes"
	"talent-optimizer/internal/logger"
	"talent-optimizer/internal/pkg/jwt"
	"talent-optimizer/internal/scheduler"
	"talent-optimizer/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
	Hub       *ws.Hub
	Scheduler *scheduler.Scheduler
}

// Bootstrap builds the container, the HTTP app, the websocket hub, and the
// affinity batch scheduler. The returned cleanup stops everything.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	log, err := logger.New(cfg.App.LogJSON, cfg.App.Environment != "production")
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}

	container, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	hub := ws.NewHub(log)
	go hub.Run()
	ws.SetDefaultHub(hub)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, cfg, container)
	registerRoutes(f, cfg, container, hub)

	sched := scheduler.New(container.AffinityEngine, cfg.Batch.CronSpec, cfg.Batch.Timeout, log)
	if err := sched.Start(context.Background()); err != nil {
		container.Close()
		return nil, nil, fmt.Errorf("scheduler: %w", err)
	}

	app := &App{Fiber: f, Container: container, Hub: hub, Scheduler: sched}
	cleanup := func() error {
		sched.Stop()
		return container.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(f *fiber.App, cfg config.Config, c *Container) {
	if f == nil {
		return
	}

	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	if cfg.App.RequestTimeout > 0 {
		f.Use(func(fc fiber.Ctx) error {
			ctx, cancel := context.WithTimeout(fc.Context(), cfg.App.RequestTimeout)
			defer cancel()
			fc.SetContext(ctx)
			return fc.Next()
		})
	}
}

func registerRoutes(f *fiber.App, cfg config.Config, c *Container, hub *ws.Hub) {
	if f == nil {
		return
	}

	var auth *middleware.AuthMiddleware
	if cfg.Auth.JWTSecret != "" {
		auth = middleware.NewAuthMiddleware(jwt.NewHMACService(cfg.Auth.JWTSecret))
	}

	reg := &routes.Registry{
		Health:         handler.NewHealthHandler(c.DB, c.Cache),
		Recommendation: handler.NewRecommendationHandler(c.Recommendation),
		Evaluation:     handler.NewEvaluationHandler(c.Evaluation),
		DomainAnalysis: handler.NewDomainAnalysisHandler(c.DomainAnalysis),
		Assignment:     handler.NewAssignmentHandler(c.Assignment),
		BatchWS:        ws.NewHandler(hub, c.Logger),
		Auth:           auth,
	}
	reg.Register(f)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
