// Package sqlite backs the storage port with an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/whiteelite/catalog/internal/domain/entities"
	"github.com/whiteelite/catalog/internal/infrastructure/database/sqlstore"
	"github.com/whiteelite/catalog/internal/logger"
)

type Dialect struct{}

func (Dialect) Placeholder(int) string { return "?" }

func (Dialect) IsConflict(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// Open opens the database at path and applies SchemaSQL. In-memory DSNs
// (":memory:", "file::memory:", "mode=memory") are pinned to a single
// connection so every query sees the bootstrapped schema.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if isMemory(path) {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.ExecContext(ctx, SchemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

func isMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

func NewUserStorage(db *sql.DB, log *logger.Logger) *sqlstore.Store[entities.User] {
	return sqlstore.New(db, Dialect{}, sqlstore.UserTable, log)
}

func NewProductStorage(db *sql.DB, log *logger.Logger) *sqlstore.Store[entities.Product] {
	return sqlstore.New(db, Dialect{}, sqlstore.ProductTable, log)
}

var _ sqlstore.Dialect = Dialect{}
