package repository

import (
	"context"
	"encoding/json"
	"strings"

	"talent-optimizer/internal/database"
	"talent-optimizer/internal/domain/project"
)

type ProjectRepository interface {
	Create(ctx context.Context, p project.Project) error
	Get(ctx context.Context, projectID string) (project.Project, error)
	Update(ctx context.Context, p project.Project) error
	Delete(ctx context.Context, projectID string) error
	ListAll(ctx context.Context, limit int) ([]project.Project, error)
	FindByIndustry(ctx context.Context, industry string) ([]project.Project, error)
}

type PostgresProjectRepository struct {
	store docStore
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{store: docStore{db: db, table: "projects", keyCol: "project_id"}}
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p project.Project) error {
	return r.store.create(ctx, "project.create", p.ProjectID, p)
}

func (r *PostgresProjectRepository) Get(ctx context.Context, projectID string) (project.Project, error) {
	var p project.Project
	err := r.store.get(ctx, "project.get", projectID, &p)
	return p, err
}

func (r *PostgresProjectRepository) Update(ctx context.Context, p project.Project) error {
	return r.store.put(ctx, "project.update", p.ProjectID, p)
}

func (r *PostgresProjectRepository) Delete(ctx context.Context, projectID string) error {
	return r.store.delete(ctx, "project.delete", projectID)
}

func (r *PostgresProjectRepository) ListAll(ctx context.Context, limit int) ([]project.Project, error) {
	out := make([]project.Project, 0)
	err := r.store.scan(ctx, "project.list", limit, func(raw []byte) error {
		var p project.Project
		if err := json.Unmarshal(raw, &p); err != nil {
			return err
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectRepository) FindByIndustry(ctx context.Context, industry string) ([]project.Project, error) {
	industry = strings.ToLower(strings.TrimSpace(industry))
	all, err := r.ListAll(ctx, 0)
	if err != nil {
		return nil, err
	}
	out := make([]project.Project, 0)
	for _, p := range all {
		if strings.ToLower(strings.TrimSpace(p.ClientIndustry)) == industry {
			out = append(out, p)
		}
	}
	return out, nil
}
