package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/study-board/internal/config"
	"github.com/adanyl0v/study-board/internal/models"
	"github.com/adanyl0v/study-board/internal/repository/sqlite"
)

// newTestStore returns a store backed by a private in-memory database.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.Open(dsn, zerolog.Nop())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	store := sqlite.NewStore(db)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// seedPair seeds two users and returns their identities.
func seedPair(t *testing.T, store *sqlite.Store) (Identity, Identity) {
	t.Helper()
	ctx := context.Background()

	seeded, err := NewUserService(zerolog.Nop(), store.Users).Seed(ctx, []config.SeedUser{
		{Username: "ansh", Name: "Ansh", Password: "password123"},
		{Username: "harshita", Name: "Harshita", Password: "password123"},
	})
	require.NoError(t, err)
	require.True(t, seeded)

	u1, err := store.Users.GetByUsername(ctx, "ansh")
	require.NoError(t, err)
	u2, err := store.Users.GetByUsername(ctx, "harshita")
	require.NoError(t, err)

	return identityOf(u1), identityOf(u2)
}

func identityOf(user *models.User) Identity {
	return Identity{UserID: user.ID, Username: user.Username}
}
