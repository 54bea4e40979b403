// Package storage opens the local sqlite database, applies migrations and
// wires up the repository set.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JehanPinto/SportsLink/internal/migrations"
	"github.com/JehanPinto/SportsLink/internal/repositories/accounts"
	"github.com/JehanPinto/SportsLink/internal/repositories/kv"
	"github.com/pressly/goose/v3"
)

// Repositories bundles the persistent stores plus the raw handle, which the
// session coordinator needs for multi-key transactional writes.
type Repositories struct {
	KV       kv.Repository
	Accounts accounts.Repository
	DB       *sql.DB
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the sqlite database at dsn,
// migrates it and returns the repository set.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		KV:       kv.NewSQLiteRepository(db),
		Accounts: accounts.NewSQLiteRepository(db),
		DB:       db,
	}, nil
}
