package database

import (
	"context"
	"fmt"
	"time"

	"github.com/xavierca1/agency-site/internal/entity"
)

type AnalyticsRepository struct {
	Stores StoreProvider
}

func NewAnalyticsRepository(stores StoreProvider) *AnalyticsRepository {
	return &AnalyticsRepository{Stores: stores}
}

func (r *AnalyticsRepository) Record(ctx context.Context, e *entity.AnalyticsEvent) error {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return err
	}

	query := `INSERT INTO analytics_events (id, event_type, payload, created_at) VALUES (:id, :event_type, :payload, :created_at)`
	if _, err := db.NamedExecContext(ctx, query, e); err != nil {
		return fmt.Errorf("erro ao registrar evento: %w", err)
	}
	return nil
}

// PurgeOlderThan apaga eventos criados antes de cutoff e devolve quantos saíram.
func (r *AnalyticsRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return 0, err
	}

	res, err := db.ExecContext(ctx, db.Rebind(`DELETE FROM analytics_events WHERE created_at < ?`), cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("erro ao limpar eventos: %w", err)
	}
	return res.RowsAffected()
}
