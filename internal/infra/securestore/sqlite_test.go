package securestore

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shamba/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := OpenSQLite(":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestSQLiteStore_SetGetRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, repository.KeyLanguage, "sw"))

	got, err := store.Get(ctx, repository.KeyLanguage)
	require.NoError(t, err)
	assert.Equal(t, "sw", got)
}

func TestSQLiteStore_SetOverwritesExisting(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, repository.KeyTheme, "light"))
	require.NoError(t, store.Set(ctx, repository.KeyTheme, "dark"))

	got, err := store.Get(ctx, repository.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", got)
}

func TestSQLiteStore_GetMissingKey(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get(context.Background(), repository.KeyAuthToken)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestSQLiteStore_DeleteIsIdempotent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, repository.KeyAuthToken, "tok"))
	require.NoError(t, store.Delete(ctx, repository.KeyAuthToken))
	// Second delete of the same key must not fail.
	require.NoError(t, store.Delete(ctx, repository.KeyAuthToken))

	_, err := store.Get(ctx, repository.KeyAuthToken)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := t.TempDir() + "/prefs.db"
	ctx := context.Background()

	store, err := OpenSQLite(path, logger)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, repository.KeyLanguage, "sw"))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path, logger)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, repository.KeyLanguage)
	require.NoError(t, err)
	assert.Equal(t, "sw", got)
}
