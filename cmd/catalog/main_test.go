package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/whiteelite/catalog/internal/config"
	"github.com/whiteelite/catalog/internal/domain/entities"
	"github.com/whiteelite/catalog/internal/logger"
	shared "github.com/whiteelite/catalog/pkg/shared/domain/entities"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, buf.String(), "catalog dev")
}

func TestOpenStorage_SQLite(t *testing.T) {
	ctx := context.Background()

	store, err := openStorage(ctx, config.DatabaseConfig{Driver: config.DriverSQLite, DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { store.db.Close() })

	user := entities.NewUser(shared.NewID(), entities.Credentials{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, store.users.Add(ctx, user))

	got, err := store.users.Get(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user, *got)
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	_, err := openStorage(context.Background(), config.DatabaseConfig{Driver: "mysql"}, logger.Nop())
	require.Error(t, err)
}
