package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Helpers comuns aos repositórios de CRUD do admin.

func updateByID(ctx context.Context, p StoreProvider, table, id string, patch any) error {
	m := NewUpdate(table, id).SetPatch(patch)
	// Sem campos: não abre conexão nem chama o banco.
	if _, _, err := m.Build(nowUTC()); err != nil {
		return err
	}

	db, err := conn(ctx, p)
	if err != nil {
		return err
	}
	return m.Exec(ctx, db)
}

func deleteByID(ctx context.Context, p StoreProvider, table, id string) error {
	db, err := conn(ctx, p)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, db.Rebind("DELETE FROM "+table+" WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("erro ao deletar de %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao deletar de %s: %w", table, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func countRows(ctx context.Context, p StoreProvider, table string) (int, error) {
	db, err := conn(ctx, p)
	if err != nil {
		return 0, err
	}

	var total int
	if err := db.GetContext(ctx, &total, "SELECT COUNT(*) FROM "+table); err != nil {
		return 0, fmt.Errorf("erro ao contar %s: %w", table, err)
	}
	return total, nil
}
