package repository

import (
	"context"
	"encoding/json"
	"strings"

	"talent-optimizer/internal/database"
	"talent-optimizer/internal/domain/employee"
)

type EmployeeRepository interface {
	Create(ctx context.Context, emp employee.Employee) error
	Get(ctx context.Context, userID string) (employee.Employee, error)
	Update(ctx context.Context, emp employee.Employee) error
	Delete(ctx context.Context, userID string) error
	ListAll(ctx context.Context, limit int) ([]employee.Employee, error)
	FindBySkills(ctx context.Context, required []string) ([]employee.Employee, error)
	FindByRole(ctx context.Context, role string) ([]employee.Employee, error)
}

type PostgresEmployeeRepository struct {
	store docStore
}

func NewPostgresEmployeeRepository(db database.DB) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{store: docStore{db: db, table: "employees", keyCol: "user_id"}}
}

func (r *PostgresEmployeeRepository) Create(ctx context.Context, emp employee.Employee) error {
	return r.store.create(ctx, "employee.create", emp.UserID, emp)
}

func (r *PostgresEmployeeRepository) Get(ctx context.Context, userID string) (employee.Employee, error) {
	var emp employee.Employee
	err := r.store.get(ctx, "employee.get", userID, &emp)
	return emp, err
}

func (r *PostgresEmployeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	return r.store.put(ctx, "employee.update", emp.UserID, emp)
}

func (r *PostgresEmployeeRepository) Delete(ctx context.Context, userID string) error {
	return r.store.delete(ctx, "employee.delete", userID)
}

func (r *PostgresEmployeeRepository) ListAll(ctx context.Context, limit int) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0)
	err := r.store.scan(ctx, "employee.list", limit, func(raw []byte) error {
		var emp employee.Employee
		if err := json.Unmarshal(raw, &emp); err != nil {
			return err
		}
		out = append(out, emp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindBySkills returns employees whose normalized skill set is a superset of
// the normalized required list. Matching happens after normalization, so
// callers may pass raw variants.
func (r *PostgresEmployeeRepository) FindBySkills(ctx context.Context, required []string) ([]employee.Employee, error) {
	all, err := r.ListAll(ctx, 0)
	if err != nil {
		return nil, err
	}
	out := make([]employee.Employee, 0)
	for _, emp := range all {
		if emp.HasAllSkills(required) {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (r *PostgresEmployeeRepository) FindByRole(ctx context.Context, role string) ([]employee.Employee, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	all, err := r.ListAll(ctx, 0)
	if err != nil {
		return nil, err
	}
	out := make([]employee.Employee, 0)
	for _, emp := range all {
		if strings.ToLower(strings.TrimSpace(emp.Role)) == role {
			out = append(out, emp)
		}
	}
	return out, nil
}
