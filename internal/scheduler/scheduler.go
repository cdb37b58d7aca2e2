// Package scheduler wires up the cron job that periodically recomputes the
// workforce affinity matrix.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"talent-optimizer/internal/affinity"
)

// Scheduler wraps robfig/cron and manages the affinity batch loop.
type Scheduler struct {
	cron    *cron.Cron
	engine  *affinity.Engine
	spec    string
	timeout time.Duration
	logger  *zap.Logger
}

// New creates a Scheduler firing on the given cron spec, e.g. "@daily".
func New(engine *affinity.Engine, spec string, timeout time.Duration, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if spec == "" {
		spec = "@daily"
	}
	if timeout <= 0 {
		timeout = 15 * time.Minute
	}
	return &Scheduler{
		cron:    cron.New(),
		engine:  engine,
		spec:    spec,
		timeout: timeout,
		logger:  logger,
	}
}

// Start registers the batch job and starts the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runBatch(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Info("cron started", zap.String("spec", s.spec))
	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("cron stopped")
}

func (s *Scheduler) runBatch(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.engine.Run(runCtx)
	if err != nil {
		if errors.Is(err, affinity.ErrBatchRunning) {
			s.logger.Info("affinity batch skipped, previous run still holds the lock")
			return
		}
		s.logger.Error("affinity batch failed", zap.Error(err))
		return
	}

	s.logger.Info("scheduled affinity batch complete",
		zap.Int("processed_pairs", res.ProcessedPairs),
		zap.Int("failed_pairs", res.FailedPairs))
}
