package repository

import (
	"context"
	"encoding/json"
	"strings"

	"talent-optimizer/internal/database"
)

// docStore is the shared access layer for the key/value tables: one natural
// key column plus a JSONB document. Typed repositories wrap it and add their
// semantic queries.
type docStore struct {
	db     database.DB
	table  string
	keyCol string
}

func (s docStore) create(ctx context.Context, op, key string, doc any) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return newError(KindValidation, op, errEmptyKey)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return newError(KindValidation, op, err)
	}
	return withRetry(ctx, op, func(ctx context.Context) error {
		_, err := s.db.Exec(ctx,
			`INSERT INTO `+s.table+` (`+s.keyCol+`, doc) VALUES ($1, $2)`,
			key, raw,
		)
		return err
	})
}

func (s docStore) put(ctx context.Context, op, key string, doc any) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return newError(KindValidation, op, errEmptyKey)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return newError(KindValidation, op, err)
	}
	return withRetry(ctx, op, func(ctx context.Context) error {
		_, err := s.db.Exec(ctx,
			`INSERT INTO `+s.table+` (`+s.keyCol+`, doc) VALUES ($1, $2)
			 ON CONFLICT (`+s.keyCol+`) DO UPDATE SET doc = EXCLUDED.doc`,
			key, raw,
		)
		return err
	})
}

func (s docStore) get(ctx context.Context, op, key string, out any) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return newError(KindValidation, op, errEmptyKey)
	}
	return withRetry(ctx, op, func(ctx context.Context) error {
		var raw []byte
		err := s.db.QueryRow(ctx,
			`SELECT doc FROM `+s.table+` WHERE `+s.keyCol+` = $1`,
			key,
		).Scan(&raw)
		if err != nil {
			if isNoRows(err) {
				return newError(KindNotFound, op, err)
			}
			return err
		}
		return json.Unmarshal(raw, out)
	})
}

func (s docStore) delete(ctx context.Context, op, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return newError(KindValidation, op, errEmptyKey)
	}
	return withRetry(ctx, op, func(ctx context.Context) error {
		affected, err := s.db.Exec(ctx,
			`DELETE FROM `+s.table+` WHERE `+s.keyCol+` = $1`,
			key,
		)
		if err != nil {
			return err
		}
		if affected == 0 {
			return newError(KindNotFound, op, nil)
		}
		return nil
	})
}

// scan walks every document, invoking decode once per row. Rows are
// collected inside the retry loop and handed to decode only after a fully
// successful read, so a mid-scan transient failure never replays rows the
// caller already saw. limit <= 0 means no limit.
func (s docStore) scan(ctx context.Context, op string, limit int, decode func(raw []byte) error) error {
	var docs [][]byte
	err := withRetry(ctx, op, func(ctx context.Context) error {
		docs = docs[:0]
		query := `SELECT doc FROM ` + s.table + ` ORDER BY ` + s.keyCol
		args := []any{}
		if limit > 0 {
			query += ` LIMIT $1`
			args = append(args, limit)
		}
		rows, err := s.db.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var raw []byte
			if err := rows.Scan(&raw); err != nil {
				return err
			}
			// The driver may reuse the row buffer on Next.
			docs = append(docs, append([]byte(nil), raw...))
		}
		return rows.Err()
	})
	if err != nil {
		return err
	}
	for _, raw := range docs {
		if err := decode(raw); err != nil {
			return wrap(op, err)
		}
	}
	return nil
}
