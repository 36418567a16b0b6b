package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/xavierca1/agency-site/internal/entity"
)

var (
	ErrNotFound  = entity.ErrNotFound
	ErrDuplicate = entity.ErrDuplicate
	ErrNoFields  = entity.ErrNoFields
)

const pgUniqueViolation = "23505"

// isUniqueViolation reconhece violação de UNIQUE nos três drivers (pgx, lib/pq, sqlite).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
