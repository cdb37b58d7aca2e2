package repository

import (
	"context"
	"encoding/json"

	"talent-optimizer/internal/database"
	"talent-optimizer/internal/domain/trend"
	"talent-optimizer/internal/skills"
)

// TechTrendRepository reads market reference data. Rows are keyed by
// normalized skill name; Get normalizes its argument before lookup.
type TechTrendRepository interface {
	Get(ctx context.Context, techName string) (trend.TechTrend, error)
	ListAll(ctx context.Context, limit int) ([]trend.TechTrend, error)
}

type PostgresTechTrendRepository struct {
	store docStore
}

func NewPostgresTechTrendRepository(db database.DB) *PostgresTechTrendRepository {
	return &PostgresTechTrendRepository{store: docStore{db: db, table: "tech_trends", keyCol: "tech_name"}}
}

func (r *PostgresTechTrendRepository) Get(ctx context.Context, techName string) (trend.TechTrend, error) {
	var row trend.TechTrend
	err := r.store.get(ctx, "trend.get", skills.Normalize(techName), &row)
	return row, err
}

func (r *PostgresTechTrendRepository) ListAll(ctx context.Context, limit int) ([]trend.TechTrend, error) {
	out := make([]trend.TechTrend, 0)
	err := r.store.scan(ctx, "trend.list", limit, func(raw []byte) error {
		var row trend.TechTrend
		if err := json.Unmarshal(raw, &row); err != nil {
			return err
		}
		out = append(out, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
