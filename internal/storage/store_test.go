package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivethitha870/BANK/internal/storage"
)

func newStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "bank.json"))
	require.NoError(t, err)
	return store
}

func TestStore_GetSetRoundTrip(t *testing.T) {
	store := newStore(t)

	_, err := store.Get("accounts")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, store.Set("accounts", []byte(`[{"id":"1"}]`)))

	value, err := store.Get("accounts")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(value))
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")

	store, err := storage.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("loans", []byte(`[]`)))

	reopened, err := storage.Open(path)
	require.NoError(t, err)
	value, err := reopened.Get("loans")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(value))
}

func TestStore_Delete(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("currentUser", []byte(`{"id":"1"}`)))
	require.NoError(t, store.Delete("currentUser"))

	_, err := store.Get("currentUser")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Deleting an absent key is a no-op.
	require.NoError(t, store.Delete("currentUser"))
}

func TestStore_UpdateCommitsAllOrNothing(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("accounts", []byte(`["before"]`)))

	boom := errors.New("boom")
	err := store.Update(func(b *storage.Batch) error {
		b.Set("accounts", []byte(`["after"]`))
		b.Set("transactions", []byte(`["tx"]`))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	value, err := store.Get("accounts")
	require.NoError(t, err)
	assert.JSONEq(t, `["before"]`, string(value))
	_, err = store.Get("transactions")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestStore_BatchReadsSeeStagedWrites(t *testing.T) {
	store := newStore(t)

	err := store.Update(func(b *storage.Batch) error {
		_, err := b.Get("cards")
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)

		b.Set("cards", []byte(`[]`))
		value, err := b.Get("cards")
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(value))

		b.Delete("cards")
		_, err = b.Get("cards")
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
		return nil
	})
	require.NoError(t, err)
}

func TestOpen_MissingFileIsEmptyStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "absent", "bank.json"))
	require.NoError(t, err)
	assert.False(t, store.Has("accounts"))
}

func TestOpen_MalformedFileIsInfrastructureError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := storage.Open(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestStore_ReloadPicksUpExternalWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	store, err := storage.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("accounts", []byte(`["mine"]`)))

	// Another process rewrites the file.
	require.NoError(t, os.WriteFile(path, []byte(`{"accounts":["theirs"]}`), 0o644))

	require.NoError(t, store.Reload())
	value, err := store.Get("accounts")
	require.NoError(t, err)
	assert.JSONEq(t, `["theirs"]`, string(value))
}
