package database

import (
	"context"
	"fmt"

	"github.com/xavierca1/agency-site/internal/entity"
)

type AdminRepository struct {
	Stores StoreProvider
}

func NewAdminRepository(stores StoreProvider) *AdminRepository {
	return &AdminRepository{Stores: stores}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return nil, err
	}

	var u entity.AdminUser
	query := `SELECT id, username, password, email, role, created_at FROM admin_users WHERE username = ?`
	if err := db.GetContext(ctx, &u, db.Rebind(query), username); err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *AdminRepository) Create(ctx context.Context, u *entity.AdminUser) error {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO admin_users (id, username, password, email, role, created_at)
		VALUES (:id, :username, :password, :email, :role, :created_at)
	`
	if _, err := db.NamedExecContext(ctx, query, u); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("erro ao criar admin: %w", err)
	}
	return nil
}
