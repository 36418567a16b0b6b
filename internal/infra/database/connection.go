package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // driver "pgx"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // driver "postgres"
	_ "modernc.org/sqlite" // driver "sqlite"
)

const FallbackDriver = "sqlite"

func init() {
	// modernc registra "sqlite", que o sqlx não conhece: sem isso o Rebind
	// não saberia que o placeholder é "?".
	sqlx.BindDriver(FallbackDriver, sqlx.QUESTION)
}

// Opener abre (e valida) uma conexão. O Selector decide quando chamar.
type Opener func(ctx context.Context) (*sqlx.DB, error)

// PrimaryOpener abre o Postgres e testa o Ping.
func PrimaryOpener(driver, dsn string) Opener {
	return func(ctx context.Context) (*sqlx.DB, error) {
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_URL não configurada")
		}

		// 1. Abre a conexão (só valida a string)
		db, err := sqlx.Open(driver, dsn)
		if err != nil {
			return nil, err
		}

		// 2. Pool
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		// 3. O Ping: a prova de fogo
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	}
}

// FallbackOpener abre o SQLite local, criando o diretório se precisar.
func FallbackOpener(path string) Opener {
	return func(ctx context.Context) (*sqlx.DB, error) {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("erro ao criar diretório do fallback: %w", err)
			}
		}

		dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
		db, err := sqlx.Open(FallbackDriver, dsn)
		if err != nil {
			return nil, err
		}
		// SQLite não gosta de escrita concorrente
		db.SetMaxOpenConns(1)

		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	}
}
