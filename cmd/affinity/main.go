// Command affinity runs one affinity batch and exits. It exists for manual
// backfills and cron-external orchestration; the server schedules the same
// batch internally.
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"talent-optimizer/internal/app"
	"talent-optimizer/internal/config"
	"talent-optimizer/internal/logger"
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

	container, err := app.NewContainer(cfg, zl)
	if err != nil {
		zl.Fatal("bootstrap failed", zap.Error(err))
	}
	defer container.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Batch.Timeout)
	defer cancel()

	res, err := container.AffinityEngine.Run(ctx)
	if err != nil {
		zl.Fatal("affinity batch failed", zap.Error(err))
	}

	zl.Info("affinity batch done",
		zap.Int("total_pairs", res.TotalPairs),
		zap.Int("processed_pairs", res.ProcessedPairs),
		zap.Int("failed_pairs", res.FailedPairs),
		zap.Duration("elapsed", res.Elapsed))
}
