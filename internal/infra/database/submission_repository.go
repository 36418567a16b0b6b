package database

import (
	"context"
	"fmt"
	"time"

	"github.com/xavierca1/agency-site/internal/entity"
)

type SubmissionRepository struct {
	Stores StoreProvider
}

func NewSubmissionRepository(stores StoreProvider) *SubmissionRepository {
	return &SubmissionRepository{Stores: stores}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *entity.Submission) error {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO submissions (id, name, email, phone, company, service, message, status, created_at, updated_at)
		VALUES (:id, :name, :email, :phone, :company, :service, :message, :status, :created_at, :updated_at)
	`
	if _, err := db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("erro ao salvar submission: %w", err)
	}
	return nil
}

func (r *SubmissionRepository) List(ctx context.Context, filter entity.SubmissionFilter) ([]*entity.Submission, error) {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, name, email, phone, company, service, message, status, created_at, updated_at FROM submissions`
	var args []any
	if filter.Status != "" && filter.Status != "all" {
		query += ` WHERE status = ?`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, filter.Limit)

	submissions := []*entity.Submission{}
	if err := db.SelectContext(ctx, &submissions, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("erro ao listar submissions: %w", err)
	}
	return submissions, nil
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id string) (*entity.Submission, error) {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return nil, err
	}

	var s entity.Submission
	query := `SELECT id, name, email, phone, company, service, message, status, created_at, updated_at FROM submissions WHERE id = ?`
	if err := db.GetContext(ctx, &s, db.Rebind(query), id); err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *SubmissionRepository) UpdateStatus(ctx context.Context, id, status string) error {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return err
	}
	return NewUpdate("submissions", id).Set("status", status).Exec(ctx, db)
}

func (r *SubmissionRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.Stores, "submissions", id)
}

// CountByStatus devolve quantas submissions há em cada status.
func (r *SubmissionRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Status string `db:"status"`
		Total  int    `db:"total"`
	}
	if err := db.SelectContext(ctx, &rows, `SELECT status, COUNT(*) AS total FROM submissions GROUP BY status`); err != nil {
		return nil, fmt.Errorf("erro ao contar submissions: %w", err)
	}

	counts := map[string]int{
		entity.SubmissionStatusNew:        0,
		entity.SubmissionStatusInProgress: 0,
		entity.SubmissionStatusCompleted:  0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
