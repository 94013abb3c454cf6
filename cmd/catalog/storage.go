package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/whiteelite/catalog/internal/config"
	"github.com/whiteelite/catalog/internal/domain/entities"
	domainrepos "github.com/whiteelite/catalog/internal/domain/repositories"
	"github.com/whiteelite/catalog/internal/infrastructure/database/postgres"
	"github.com/whiteelite/catalog/internal/infrastructure/database/sqlite"
	"github.com/whiteelite/catalog/internal/logger"
)

type storages struct {
	db       *sql.DB
	users    domainrepos.Storage[entities.User]
	products domainrepos.Storage[entities.Product]
}

func openStorage(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (*storages, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, postgres.Options{
			DSN:                cfg.DSN,
			MaxOpenConnections: cfg.MaxOpenConnections,
			MaxIdleConnections: cfg.MaxIdleConnections,
		})
		if err != nil {
			return nil, err
		}
		return &storages{db: db, users: postgres.NewUserStorage(db, log), products: postgres.NewProductStorage(db, log)}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &storages{db: db, users: sqlite.NewUserStorage(db, log), products: sqlite.NewProductStorage(db, log)}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
