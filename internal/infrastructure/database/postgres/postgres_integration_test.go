//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/whiteelite/catalog/internal/domain/entities"
	domainerrors "github.com/whiteelite/catalog/internal/domain/errors"
	"github.com/whiteelite/catalog/internal/infrastructure/database/postgres"
	"github.com/whiteelite/catalog/internal/logger"
	shared "github.com/whiteelite/catalog/pkg/shared/domain/entities"
)

// setupPostgresContainer starts a disposable PostgreSQL container and returns
// its connection string. The container is terminated on test cleanup.
func setupPostgresContainer(t *testing.T) string {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("catalog"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	return dsn
}

func TestIntegration_Postgres_UserLifecycle(t *testing.T) {
	dsn := setupPostgresContainer(t)
	ctx := context.Background()

	db, err := postgres.Open(ctx, postgres.Options{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.ExecContext(ctx, postgres.SchemaSQL)
	require.NoError(t, err)

	store := postgres.NewUserStorage(db, logger.Nop())
	user := entities.NewUser(shared.NewID(), entities.Credentials{Name: "Ada", Email: "ada@example.com"})

	require.NoError(t, store.Add(ctx, user))

	err = store.Add(ctx, user)
	require.True(t, errors.Is(err, domainerrors.ErrConflict), "duplicate insert should be a conflict, got %v", err)

	got, err := store.Get(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user, *got)

	updated := user.Apply(entities.Credentials{Name: "Ada L.", Email: "ada@example.com"})
	require.NoError(t, store.Update(ctx, updated))

	got, err = store.Get(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, entities.Name("Ada L."), got.Name)

	require.NoError(t, store.Remove(ctx, user.ID))
	require.NoError(t, store.Remove(ctx, user.ID))

	got, err = store.Get(ctx, user.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	err = store.Update(ctx, updated)
	require.True(t, errors.Is(err, domainerrors.ErrNoRowsAffected))
}

func TestIntegration_Postgres_ProductRoundTrip(t *testing.T) {
	dsn := setupPostgresContainer(t)
	ctx := context.Background()

	db, err := postgres.Open(ctx, postgres.Options{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.ExecContext(ctx, postgres.SchemaSQL)
	require.NoError(t, err)

	store := postgres.NewProductStorage(db, logger.Nop())
	product := entities.NewProduct(shared.NewID(), entities.Description{Name: "Lamp", Price: 1999})

	require.NoError(t, store.Add(ctx, product))

	got, err := store.Get(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, product, *got)
}
