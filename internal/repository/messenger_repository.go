package repository

import (
	"context"
	"strings"

	"talent-optimizer/internal/database"
)

// PairStats aggregates messenger traffic between two employees.
type PairStats struct {
	TotalMessages      int
	AvgResponseMinutes float64
	PaydayContacts     int
	VacationContacts   int
}

// MessengerLogRepository is a read-only view over the message-log table.
// Rows are written by the messenger ingestion pipeline; this service only
// aggregates them per pair for the affinity batch.
type MessengerLogRepository interface {
	StatsForPair(ctx context.Context, e1, e2 string) (PairStats, error)
}

type PostgresMessengerLogRepository struct {
	db database.DB
}

func NewPostgresMessengerLogRepository(db database.DB) *PostgresMessengerLogRepository {
	return &PostgresMessengerLogRepository{db: db}
}

// StatsForPair counts messages in both directions and averages the logged
// response times. Payday and vacation-day contact markers are set upstream.
func (r *PostgresMessengerLogRepository) StatsForPair(ctx context.Context, e1, e2 string) (PairStats, error) {
	const op = "messenger.stats_for_pair"
	if strings.TrimSpace(e1) == "" || strings.TrimSpace(e2) == "" {
		return PairStats{}, newError(KindValidation, op, errEmptyKey)
	}
	var stats PairStats
	err := withRetry(ctx, op, func(ctx context.Context) error {
		var avg *float64
		err := r.db.QueryRow(ctx,
			`SELECT
				COUNT(*),
				AVG((doc->>'response_minutes')::numeric),
				COUNT(*) FILTER (WHERE (doc->>'on_payday')::boolean),
				COUNT(*) FILTER (WHERE (doc->>'on_vacation')::boolean)
			 FROM messenger_logs
			 WHERE (doc->>'sender_id' = $1 AND doc->>'receiver_id' = $2)
			    OR (doc->>'sender_id' = $2 AND doc->>'receiver_id' = $1)`,
			e1, e2,
		).Scan(&stats.TotalMessages, &avg, &stats.PaydayContacts, &stats.VacationContacts)
		if err != nil {
			return err
		}
		if avg != nil {
			stats.AvgResponseMinutes = *avg
		}
		return nil
	})
	if err != nil {
		return PairStats{}, err
	}
	return stats, nil
}
