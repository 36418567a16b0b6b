package database

import (
	"context"
	"fmt"

	"github.com/xavierca1/agency-site/internal/entity"
)

const teamColumns = `id, name, role, bio, image_url, linkedin_url, position, status, created_at, updated_at`

type TeamRepository struct {
	Stores StoreProvider
}

func NewTeamRepository(stores StoreProvider) *TeamRepository {
	return &TeamRepository{Stores: stores}
}

func (r *TeamRepository) Create(ctx context.Context, m *entity.TeamMember) error {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO team_members (` + teamColumns + `)
		VALUES (:id, :name, :role, :bio, :image_url, :linkedin_url, :position, :status, :created_at, :updated_at)
	`
	if _, err := db.NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("erro ao criar membro da equipe: %w", err)
	}
	return nil
}

func (r *TeamRepository) List(ctx context.Context, activeOnly bool) ([]*entity.TeamMember, error) {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + teamColumns + ` FROM team_members`
	var args []any
	if activeOnly {
		query += ` WHERE status = ?`
		args = append(args, entity.StatusActive)
	}
	query += ` ORDER BY position ASC, name ASC`

	members := []*entity.TeamMember{}
	if err := db.SelectContext(ctx, &members, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("erro ao listar equipe: %w", err)
	}
	return members, nil
}

func (r *TeamRepository) FindByName(ctx context.Context, name string) (*entity.TeamMember, error) {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return nil, err
	}

	var m entity.TeamMember
	query := `SELECT ` + teamColumns + ` FROM team_members WHERE name = ?`
	if err := db.GetContext(ctx, &m, db.Rebind(query), name); err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

func (r *TeamRepository) Update(ctx context.Context, id string, patch entity.TeamMemberPatch) error {
	return updateByID(ctx, r.Stores, "team_members", id, patch)
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.Stores, "team_members", id)
}

func (r *TeamRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.Stores, "team_members")
}
