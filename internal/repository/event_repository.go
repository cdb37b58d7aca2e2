package repository

import (
	"context"
	"encoding/json"
	"strings"

	"talent-optimizer/internal/database"
)

// CompanyEvent is a read-only record of one social event and its attendees.
type CompanyEvent struct {
	EventID   string   `json:"event_id"`
	EventName string   `json:"event_name"`
	EventDate string   `json:"event_date"`
	Attendees []string `json:"attendees"`
}

type CompanyEventRepository interface {
	ListAll(ctx context.Context, limit int) ([]CompanyEvent, error)
	SharedEventCount(ctx context.Context, e1, e2 string) (int, error)
}

type PostgresCompanyEventRepository struct {
	store docStore
}

func NewPostgresCompanyEventRepository(db database.DB) *PostgresCompanyEventRepository {
	return &PostgresCompanyEventRepository{store: docStore{db: db, table: "company_events", keyCol: "event_id"}}
}

func (r *PostgresCompanyEventRepository) ListAll(ctx context.Context, limit int) ([]CompanyEvent, error) {
	out := make([]CompanyEvent, 0)
	err := r.store.scan(ctx, "event.list", limit, func(raw []byte) error {
		var ev CompanyEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			return err
		}
		out = append(out, ev)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SharedEventCount counts events where both employees appear in the
// attendee list.
func (r *PostgresCompanyEventRepository) SharedEventCount(ctx context.Context, e1, e2 string) (int, error) {
	const op = "event.shared_count"
	if strings.TrimSpace(e1) == "" || strings.TrimSpace(e2) == "" {
		return 0, newError(KindValidation, op, errEmptyKey)
	}
	events, err := r.ListAll(ctx, 0)
	if err != nil {
		return 0, err
	}
	shared := 0
	for _, ev := range events {
		if containsID(ev.Attendees, e1) && containsID(ev.Attendees, e2) {
			shared++
		}
	}
	return shared, nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
