package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storefront/internal/client/models"

	_ "modernc.org/sqlite"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "state.db")
	store, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreCredentialRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	token, err := store.Credential(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.SetCredential(ctx, "tok-1", models.RoleUser))

	token, err = store.Credential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	role, err := store.Role(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)
}

func TestStoreIdentityCache(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	identity, err := store.Identity(ctx)
	require.NoError(t, err)
	assert.Nil(t, identity)

	want := models.Identity{Name: "Sam", Email: "sam@example.com", Role: models.RoleAdmin}
	require.NoError(t, store.SetIdentity(ctx, want))

	identity, err = store.Identity(ctx)
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, want, *identity)
}

func TestStoreClearWipesEverything(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetCredential(ctx, "tok-1", models.RoleUser))
	require.NoError(t, store.SetIdentity(ctx, models.Identity{Name: "Sam"}))

	require.NoError(t, store.Clear(ctx))

	token, err := store.Credential(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	role, err := store.Role(ctx)
	require.NoError(t, err)
	assert.Empty(t, role)

	identity, err := store.Identity(ctx)
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestStoreCredentialSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "state.db")

	store, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, store.SetCredential(ctx, "tok-persist", models.RoleUser))
	require.NoError(t, store.Close())

	store, err = Open(ctx, dsn)
	require.NoError(t, err)
	defer store.Close()

	token, err := store.Credential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-persist", token)
}
