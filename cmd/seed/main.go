// Command seed loads reference data (tech trends) and a small demo dataset
// into the database. Safe to re-run; existing rows are overwritten.
package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"talent-optimizer/internal/config"
	"talent-optimizer/internal/database"
	"talent-optimizer/internal/database/postgres"
	"talent-optimizer/internal/logger"
	"talent-optimizer/internal/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.App.LogJSON, cfg.App.Environment != "production")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		zl.Fatal("database connect failed", zap.Error(err))
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		zl.Fatal("schema setup failed", zap.Error(err))
	}

	err = seeder.RunAll(ctx, db, zl,
		seeder.TechTrendSeeder{},
		seeder.DemoDataSeeder{},
	)
	if err != nil {
		zl.Fatal("seeding failed", zap.Error(err))
	}
	zl.Info("seeding complete")
}
