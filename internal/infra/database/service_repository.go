package database

import (
	"context"
	"fmt"

	"github.com/xavierca1/agency-site/internal/entity"
)

const serviceColumns = `id, title, description, icon, category, price, featured, status, points, sub_services, created_at, updated_at`

type ServiceRepository struct {
	Stores StoreProvider
}

func NewServiceRepository(stores StoreProvider) *ServiceRepository {
	return &ServiceRepository{Stores: stores}
}

func (r *ServiceRepository) Create(ctx context.Context, s *entity.Service) error {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO services (` + serviceColumns + `)
		VALUES (:id, :title, :description, :icon, :category, :price, :featured, :status, :points, :sub_services, :created_at, :updated_at)
	`
	if _, err := db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("erro ao criar serviço: %w", err)
	}
	return nil
}

// List devolve todos os serviços; activeOnly filtra para o site público.
func (r *ServiceRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Service, error) {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + serviceColumns + ` FROM services`
	var args []any
	if activeOnly {
		query += ` WHERE status = ?`
		args = append(args, entity.StatusActive)
	}
	query += ` ORDER BY featured DESC, created_at ASC`

	services := []*entity.Service{}
	if err := db.SelectContext(ctx, &services, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("erro ao listar serviços: %w", err)
	}
	return services, nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*entity.Service, error) {
	return r.findOne(ctx, `id = ?`, id)
}

func (r *ServiceRepository) FindByTitle(ctx context.Context, title string) (*entity.Service, error) {
	return r.findOne(ctx, `title = ?`, title)
}

func (r *ServiceRepository) findOne(ctx context.Context, where string, arg any) (*entity.Service, error) {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return nil, err
	}

	var s entity.Service
	query := `SELECT ` + serviceColumns + ` FROM services WHERE ` + where
	if err := db.GetContext(ctx, &s, db.Rebind(query), arg); err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *ServiceRepository) Update(ctx context.Context, id string, patch entity.ServicePatch) error {
	return updateByID(ctx, r.Stores, "services", id, patch)
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.Stores, "services", id)
}

func (r *ServiceRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.Stores, "services")
}
