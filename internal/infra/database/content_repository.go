package database

import (
	"context"
	"fmt"

	"github.com/xavierca1/agency-site/internal/entity"
)

const contentColumns = `id, section, block_key, title, body, image_url, author, position, created_at, updated_at`

type ContentRepository struct {
	Stores StoreProvider
}

func NewContentRepository(stores StoreProvider) *ContentRepository {
	return &ContentRepository{Stores: stores}
}

func (r *ContentRepository) Create(ctx context.Context, b *entity.ContentBlock) error {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO content_blocks (` + contentColumns + `)
		VALUES (:id, :section, :block_key, :title, :body, :image_url, :author, :position, :created_at, :updated_at)
	`
	if _, err := db.NamedExecContext(ctx, query, b); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("erro ao criar bloco de conteúdo: %w", err)
	}
	return nil
}

// List devolve os blocos de uma seção; section vazia devolve todos.
func (r *ContentRepository) List(ctx context.Context, section string) ([]*entity.ContentBlock, error) {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + contentColumns + ` FROM content_blocks`
	var args []any
	if section != "" {
		query += ` WHERE section = ?`
		args = append(args, section)
	}
	query += ` ORDER BY section ASC, position ASC, created_at ASC`

	blocks := []*entity.ContentBlock{}
	if err := db.SelectContext(ctx, &blocks, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("erro ao listar conteúdo: %w", err)
	}
	return blocks, nil
}

func (r *ContentRepository) FindBySectionKey(ctx context.Context, section, key string) (*entity.ContentBlock, error) {
	db, err := conn(ctx, r.Stores)
	if err != nil {
		return nil, err
	}

	var b entity.ContentBlock
	query := `SELECT ` + contentColumns + ` FROM content_blocks WHERE section = ? AND block_key = ?`
	if err := db.GetContext(ctx, &b, db.Rebind(query), section, key); err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *ContentRepository) Update(ctx context.Context, id string, patch entity.ContentBlockPatch) error {
	return updateByID(ctx, r.Stores, "content_blocks", id, patch)
}

func (r *ContentRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.Stores, "content_blocks", id)
}
