package repository

import (
	"context"
	"encoding/json"
	"strings"

	"talent-optimizer/internal/database"
	"talent-optimizer/internal/domain/evaluation"
)

type EvaluationRepository interface {
	Create(ctx context.Context, ev evaluation.Evaluation) error
	Get(ctx context.Context, evaluationID string) (evaluation.Evaluation, error)
	Update(ctx context.Context, ev evaluation.Evaluation) error
	Delete(ctx context.Context, evaluationID string) error
	ListAll(ctx context.Context, limit int) ([]evaluation.Evaluation, error)
	FindByStatus(ctx context.Context, status evaluation.Status) ([]evaluation.Evaluation, error)
}

// PostgresEvaluationRepository keeps the status in its own indexed column
// alongside the document.
type PostgresEvaluationRepository struct {
	db database.DB
}

func NewPostgresEvaluationRepository(db database.DB) *PostgresEvaluationRepository {
	return &PostgresEvaluationRepository{db: db}
}

func (r *PostgresEvaluationRepository) Create(ctx context.Context, ev evaluation.Evaluation) error {
	return r.write(ctx, "evaluation.create", ev, false)
}

func (r *PostgresEvaluationRepository) Update(ctx context.Context, ev evaluation.Evaluation) error {
	return r.write(ctx, "evaluation.update", ev, true)
}

func (r *PostgresEvaluationRepository) write(ctx context.Context, op string, ev evaluation.Evaluation, upsert bool) error {
	if strings.TrimSpace(ev.EvaluationID) == "" {
		return newError(KindValidation, op, errEmptyKey)
	}
	if _, err := evaluation.ParseStatus(string(ev.Status)); err != nil {
		return newError(KindValidation, op, err)
	}
	raw, err := json.Marshal(ev)
	if err != nil {
		return newError(KindValidation, op, err)
	}
	query := `INSERT INTO employee_evaluations (evaluation_id, status, doc) VALUES ($1, $2, $3)`
	if upsert {
		query += ` ON CONFLICT (evaluation_id) DO UPDATE SET status = EXCLUDED.status, doc = EXCLUDED.doc`
	}
	return withRetry(ctx, op, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, ev.EvaluationID, string(ev.Status), raw)
		return err
	})
}

func (r *PostgresEvaluationRepository) Get(ctx context.Context, evaluationID string) (evaluation.Evaluation, error) {
	const op = "evaluation.get"
	var ev evaluation.Evaluation
	if strings.TrimSpace(evaluationID) == "" {
		return ev, newError(KindValidation, op, errEmptyKey)
	}
	err := withRetry(ctx, op, func(ctx context.Context) error {
		var raw []byte
		err := r.db.QueryRow(ctx,
			`SELECT doc FROM employee_evaluations WHERE evaluation_id = $1`, evaluationID,
		).Scan(&raw)
		if err != nil {
			if isNoRows(err) {
				return newError(KindNotFound, op, err)
			}
			return err
		}
		return json.Unmarshal(raw, &ev)
	})
	return ev, err
}

func (r *PostgresEvaluationRepository) Delete(ctx context.Context, evaluationID string) error {
	const op = "evaluation.delete"
	if strings.TrimSpace(evaluationID) == "" {
		return newError(KindValidation, op, errEmptyKey)
	}
	return withRetry(ctx, op, func(ctx context.Context) error {
		affected, err := r.db.Exec(ctx,
			`DELETE FROM employee_evaluations WHERE evaluation_id = $1`, evaluationID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return newError(KindNotFound, op, nil)
		}
		return nil
	})
}

func (r *PostgresEvaluationRepository) ListAll(ctx context.Context, limit int) ([]evaluation.Evaluation, error) {
	return r.query(ctx, "evaluation.list",
		`SELECT doc FROM employee_evaluations ORDER BY evaluation_id`, limit)
}

func (r *PostgresEvaluationRepository) FindByStatus(ctx context.Context, status evaluation.Status) ([]evaluation.Evaluation, error) {
	const op = "evaluation.find_by_status"
	if _, err := evaluation.ParseStatus(string(status)); err != nil {
		return nil, newError(KindValidation, op, err)
	}
	out := make([]evaluation.Evaluation, 0)
	err := withRetry(ctx, op, func(ctx context.Context) error {
		rows, err := r.db.Query(ctx,
			`SELECT doc FROM employee_evaluations WHERE status = $1 ORDER BY evaluation_id`,
			string(status),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out = out[:0]
		return decodeEvaluationRows(rows, &out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresEvaluationRepository) query(ctx context.Context, op, base string, limit int) ([]evaluation.Evaluation, error) {
	out := make([]evaluation.Evaluation, 0)
	err := withRetry(ctx, op, func(ctx context.Context) error {
		query := base
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
		return decodeEvaluationRows(rows, &out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decodeEvaluationRows(rows database.Rows, out *[]evaluation.Evaluation) error {
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return err
		}
		var ev evaluation.Evaluation
		if err := json.Unmarshal(raw, &ev); err != nil {
			return err
		}
		*out = append(*out, ev)
	}
	return rows.Err()
}
