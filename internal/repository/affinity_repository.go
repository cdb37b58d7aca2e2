package repository

import (
	"context"
	"encoding/json"
	"strings"

	"talent-optimizer/internal/database"
	"talent-optimizer/internal/domain/affinity"
)

type AffinityRepository interface {
	Put(ctx context.Context, aff affinity.Affinity) error
	Get(ctx context.Context, affinityID string) (affinity.Affinity, error)
	Delete(ctx context.Context, affinityID string) error
	ListAll(ctx context.Context, limit int) ([]affinity.Affinity, error)
	FindByPair(ctx context.Context, e1, e2 string) (affinity.Affinity, error)
	FindByEmployee(ctx context.Context, userID string) ([]affinity.Affinity, error)
}

// PostgresAffinityRepository stores affinity rows with the pair members in
// dedicated columns so lookups by one employee avoid a document scan.
type PostgresAffinityRepository struct {
	db database.DB
}

func NewPostgresAffinityRepository(db database.DB) *PostgresAffinityRepository {
	return &PostgresAffinityRepository{db: db}
}

// Put overwrites by affinity id. The daily batch relies on this being
// idempotent.
func (r *PostgresAffinityRepository) Put(ctx context.Context, aff affinity.Affinity) error {
	const op = "affinity.put"
	if strings.TrimSpace(aff.AffinityID) == "" {
		return newError(KindValidation, op, errEmptyKey)
	}
	raw, err := json.Marshal(aff)
	if err != nil {
		return newError(KindValidation, op, err)
	}
	return withRetry(ctx, op, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx,
			`INSERT INTO employee_affinity (affinity_id, employee_1, employee_2, doc)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (affinity_id) DO UPDATE
			 SET employee_1 = EXCLUDED.employee_1,
			     employee_2 = EXCLUDED.employee_2,
			     doc = EXCLUDED.doc`,
			aff.AffinityID, aff.Pair.Employee1, aff.Pair.Employee2, raw,
		)
		return err
	})
}

func (r *PostgresAffinityRepository) Get(ctx context.Context, affinityID string) (affinity.Affinity, error) {
	const op = "affinity.get"
	var aff affinity.Affinity
	if strings.TrimSpace(affinityID) == "" {
		return aff, newError(KindValidation, op, errEmptyKey)
	}
	err := withRetry(ctx, op, func(ctx context.Context) error {
		var raw []byte
		err := r.db.QueryRow(ctx,
			`SELECT doc FROM employee_affinity WHERE affinity_id = $1`, affinityID,
		).Scan(&raw)
		if err != nil {
			if isNoRows(err) {
				return newError(KindNotFound, op, err)
			}
			return err
		}
		return json.Unmarshal(raw, &aff)
	})
	return aff, err
}

func (r *PostgresAffinityRepository) Delete(ctx context.Context, affinityID string) error {
	const op = "affinity.delete"
	if strings.TrimSpace(affinityID) == "" {
		return newError(KindValidation, op, errEmptyKey)
	}
	return withRetry(ctx, op, func(ctx context.Context) error {
		affected, err := r.db.Exec(ctx,
			`DELETE FROM employee_affinity WHERE affinity_id = $1`, affinityID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return newError(KindNotFound, op, nil)
		}
		return nil
	})
}

func (r *PostgresAffinityRepository) ListAll(ctx context.Context, limit int) ([]affinity.Affinity, error) {
	const op = "affinity.list"
	out := make([]affinity.Affinity, 0)
	err := withRetry(ctx, op, func(ctx context.Context) error {
		query := `SELECT doc FROM employee_affinity ORDER BY affinity_id`
		args := []any{}
		if limit > 0 {
			query += ` LIMIT $1`
			args = append(args, limit)
		}
		rows, err := r.db.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out = out[:0]
		for rows.Next() {
			var raw []byte
			if err := rows.Scan(&raw); err != nil {
				return err
			}
			var aff affinity.Affinity
			if err := json.Unmarshal(raw, &aff); err != nil {
				return err
			}
			out = append(out, aff)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindByPair tolerates either member ordering: it tries both derived ids and
// then falls back to a scan matching the stored pair in either direction.
func (r *PostgresAffinityRepository) FindByPair(ctx context.Context, e1, e2 string) (affinity.Affinity, error) {
	const op = "affinity.find_by_pair"
	if strings.TrimSpace(e1) == "" || strings.TrimSpace(e2) == "" {
		return affinity.Affinity{}, newError(KindValidation, op, errEmptyKey)
	}

	for _, id := range []string{"AFF_" + e1 + "_" + e2, "AFF_" + e2 + "_" + e1} {
		aff, err := r.Get(ctx, id)
		if err == nil {
			return aff, nil
		}
		if !IsNotFound(err) {
			return affinity.Affinity{}, err
		}
	}

	all, err := r.ListAll(ctx, 0)
	if err != nil {
		return affinity.Affinity{}, err
	}
	for _, aff := range all {
		p := aff.Pair
		if (p.Employee1 == e1 && p.Employee2 == e2) || (p.Employee1 == e2 && p.Employee2 == e1) {
			return aff, nil
		}
	}
	return affinity.Affinity{}, newError(KindNotFound, op, nil)
}

// FindByEmployee returns every affinity row mentioning userID, using the
// member columns as the index.
func (r *PostgresAffinityRepository) FindByEmployee(ctx context.Context, userID string) ([]affinity.Affinity, error) {
	const op = "affinity.find_by_employee"
	if strings.TrimSpace(userID) == "" {
		return nil, newError(KindValidation, op, errEmptyKey)
	}
	out := make([]affinity.Affinity, 0)
	err := withRetry(ctx, op, func(ctx context.Context) error {
		rows, err := r.db.Query(ctx,
			`SELECT doc FROM employee_affinity WHERE employee_1 = $1 OR employee_2 = $1`,
			userID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out = out[:0]
		for rows.Next() {
			var raw []byte
			if err := rows.Scan(&raw); err != nil {
				return err
			}
			var aff affinity.Affinity
			if err := json.Unmarshal(raw, &aff); err != nil {
				return err
			}
			out = append(out, aff)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
