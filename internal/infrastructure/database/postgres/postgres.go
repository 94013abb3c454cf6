// Package postgres backs the storage port with PostgreSQL through the pgx
// database/sql driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/whiteelite/catalog/internal/domain/entities"
	"github.com/whiteelite/catalog/internal/infrastructure/database/sqlstore"
	"github.com/whiteelite/catalog/internal/logger"
)

const (
	uniqueViolation = "23505"

	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 10
	defaultConnMaxLifetime = 30 * time.Minute
	defaultConnMaxIdleTime = 5 * time.Minute
)

type Dialect struct{}

func (Dialect) Placeholder(n int) string { return "$" + strconv.Itoa(n) }

func (Dialect) IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type Options struct {
	DSN                string
	MaxOpenConnections int
	MaxIdleConnections int
}

// Open connects to PostgreSQL and verifies the connection. The schema is
// expected to exist already.
func Open(ctx context.Context, opts Options) (*sql.DB, error) {
	if opts.MaxOpenConnections <= 0 {
		opts.MaxOpenConnections = defaultMaxOpenConns
	}
	if opts.MaxIdleConnections <= 0 {
		opts.MaxIdleConnections = defaultMaxIdleConns
	}

	db, err := sql.Open("pgx", opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(opts.MaxOpenConnections)
	db.SetMaxIdleConns(opts.MaxIdleConnections)
	db.SetConnMaxLifetime(defaultConnMaxLifetime)
	db.SetConnMaxIdleTime(defaultConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func NewUserStorage(db *sql.DB, log *logger.Logger) *sqlstore.Store[entities.User] {
	return sqlstore.New(db, Dialect{}, sqlstore.UserTable, log)
}

func NewProductStorage(db *sql.DB, log *logger.Logger) *sqlstore.Store[entities.Product] {
	return sqlstore.New(db, Dialect{}, sqlstore.ProductTable, log)
}

var _ sqlstore.Dialect = Dialect{}
