package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	affengine "talent-optimizer/internal/affinity"
	"talent-optimizer/internal/ai"
	"talent-optimizer/internal/ai/gemini"
	"talent-optimizer/internal/config"
	"talent-optimizer/internal/database"
	dbpostgres "talent-optimizer/internal/database/postgres"
	"talent-optimizer/internal/event"
	"talent-optimizer/internal/infrastructure/cache"
	"talent-optimizer/internal/repository"
	"talent-optimizer/internal/usecase"
)

// Container holds every long-lived dependency. Construction is eager so a
// misconfigured deployment fails at startup, not on the first request.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB        database.DB
	Cache     *cache.Redis
	Publisher event.Publisher

	Employees   repository.EmployeeRepository
	Projects    repository.ProjectRepository
	Affinities  repository.AffinityRepository
	Trends      repository.TechTrendRepository
	Evaluations repository.EvaluationRepository
	Messenger   repository.MessengerLogRepository
	Events      repository.CompanyEventRepository

	Recommendation usecase.RecommendationUsecase
	Evaluation     usecase.EvaluationUsecase
	DomainAnalysis usecase.DomainAnalysisUsecase
	Assignment     usecase.AssignmentUsecase

	AffinityEngine *affengine.Engine
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := database.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	publisher, err := event.NewRabbitPublisher(cfg.Events.AMQPURI, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("event publisher: %w", err)
	}

	var completer ai.Completer
	var embedder ai.Embedder
	if cfg.AI.GeminiAPIKey != "" {
		client, err := gemini.NewClient(ctx, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel, cfg.AI.EmbeddingModel, cfg.AI.EmbeddingDimensions)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		completer = client
		embedder = client
	} else {
		logger.Warn("gemini api key not set, narrative and semantic features run on fallbacks")
	}

	c := &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Cache:     redisCache,
		Publisher: publisher,

		Employees:   repository.NewPostgresEmployeeRepository(db),
		Projects:    repository.NewPostgresProjectRepository(db),
		Affinities:  repository.NewPostgresAffinityRepository(db),
		Trends:      repository.NewPostgresTechTrendRepository(db),
		Evaluations: repository.NewPostgresEvaluationRepository(db),
		Messenger:   repository.NewPostgresMessengerLogRepository(db),
		Events:      repository.NewPostgresCompanyEventRepository(db),
	}

	c.Recommendation = usecase.NewRecommendationEngine(
		c.Employees, c.Projects, c.Affinities,
		embedder, completer, redisCache, logger, cfg.App.MaxConcurrency,
	)
	c.Evaluation = usecase.NewEvaluator(
		c.Employees, c.Trends, c.Evaluations, completer, publisher, logger,
	)
	c.DomainAnalysis = usecase.NewDomainAnalyzer(c.Employees, c.Projects, completer, logger)
	c.Assignment = usecase.NewAssigner(c.Employees, c.Projects, publisher, logger)

	c.AffinityEngine = affengine.NewEngine(
		c.Employees, c.Projects, c.Messenger, c.Events, c.Affinities,
		redisCache, publisher, logger, cfg.App.MaxConcurrency,
	)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Publisher != nil {
		if err := c.Publisher.Close(); err != nil {
			c.Logger.Warn("close publisher", zap.Error(err))
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			c.Logger.Warn("close redis", zap.Error(err))
		}
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
