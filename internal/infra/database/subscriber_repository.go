package database

import (
	"context"
	"fmt"
	"time"

	"github.com/xavierca1/agency-site/internal/entity"
)

const subscriberColumns = `id, email, name, preferences, status, created_at, updated_at, unsubscribed_at`

type SubscriberRepository struct {
	Stores StoreProvider
}

func NewSubscriberRepository(stores StoreProvider) *SubscriberRepository {
	return &SubscriberRepository{Stores: stores}
}

func (r *SubscriberRepository) FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return nil, err
	}

	var s entity.Subscriber
	query := `SELECT ` + subscriberColumns + ` FROM subscribers WHERE email = ?`
	if err := db.GetContext(ctx, &s, db.Rebind(query), email); err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *SubscriberRepository) Create(ctx context.Context, s *entity.Subscriber) error {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO subscribers (id, email, name, preferences, status, created_at, updated_at, unsubscribed_at)
		VALUES (:id, :email, :name, :preferences, :status, :created_at, :updated_at, :unsubscribed_at)
	`
	if _, err := db.NamedExecContext(ctx, query, s); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("erro ao salvar subscriber: %w", err)
	}
	return nil
}

// Reactivate volta a linha existente para active. Nome e preferências só
// mudam se vierem preenchidos.
func (r *SubscriberRepository) Reactivate(ctx context.Context, id, name string, preferences []string) error {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return err
	}

	m := NewUpdate("subscribers", id).
		Set("status", entity.SubscriberStatusActive).
		Set("unsubscribed_at", nil)
	if name != "" {
		m.Set("name", name)
	}
	if preferences != nil {
		m.Set("preferences", preferences)
	}
	return m.Exec(ctx, db)
}

func (r *SubscriberRepository) Unsubscribe(ctx context.Context, email string, at time.Time) error {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return err
	}

	query := `UPDATE subscribers SET status = ?, unsubscribed_at = ?, updated_at = ? WHERE email = ?`
	res, err := db.ExecContext(ctx, db.Rebind(query), entity.SubscriberStatusUnsubscribed, at, at, email)
	if err != nil {
		return fmt.Errorf("erro ao descadastrar subscriber: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SubscriberRepository) List(ctx context.Context) ([]*entity.Subscriber, error) {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return nil, err
	}

	subscribers := []*entity.Subscriber{}
	query := `SELECT ` + subscriberColumns + ` FROM subscribers ORDER BY created_at DESC`
	if err := db.SelectContext(ctx, &subscribers, query); err != nil {
		return nil, fmt.Errorf("erro ao listar subscribers: %w", err)
	}
	return subscribers, nil
}

func (r *SubscriberRepository) Stats(ctx context.Context) (entity.SubscriberStats, error) {
	var stats entity.SubscriberStats

	db, err := conn(ctx, r.Stores)
	if err != nil {
		return stats, err
	}

	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0) AS active,
			COALESCE(SUM(CASE WHEN status = 'unsubscribed' THEN 1 ELSE 0 END), 0) AS unsubscribed
		FROM subscribers
	`
	if err := db.GetContext(ctx, &stats, query); err != nil {
		return stats, fmt.Errorf("erro ao calcular estatísticas: %w", err)
	}
	return stats, nil
}
