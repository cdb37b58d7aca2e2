// Package seeder loads reference and demo data into the backing tables.
package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"talent-optimizer/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// RunAll executes the given seeders in order, stopping at the first failure.
func RunAll(ctx context.Context, db database.DB, logger *zap.Logger, seeders ...Seeder) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, s := range seeders {
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Info("seeded", zap.String("seeder", s.Name()))
	}
	return nil
}

// upsertDoc writes one document row, replacing any existing one.
func upsertDoc(ctx context.Context, db database.DB, table, keyCol, key string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx,
		`INSERT INTO `+table+` (`+keyCol+`, doc) VALUES ($1, $2)
		 ON CONFLICT (`+keyCol+`) DO UPDATE SET doc = EXCLUDED.doc`,
		key, raw,
	)
	return err
}
