package keystore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"tattooer/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secure.json")
	store, err := NewSecureStore(path, "device-secret")
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", "sensitive value"))

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "sensitive value", value)
}

func TestSecureStore_ValuesAreEncryptedOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secure.json")
	store, err := NewSecureStore(path, "device-secret")
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "password", "hunter2-plaintext"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hunter2-plaintext")

	var file map[string]any
	require.NoError(t, json.Unmarshal(data, &file))
	assert.NotEmpty(t, file["salt"])
}

func TestSecureStore_GetMissingKey(t *testing.T) {
	store, err := NewSecureStore(filepath.Join(t.TempDir(), "secure.json"), "s")
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestSecureStore_DeleteMissingKeyIsNoop(t *testing.T) {
	store, err := NewSecureStore(filepath.Join(t.TempDir(), "secure.json"), "s")
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "missing"))
}

func TestSecureStore_WrongSecretCannotRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secure.json")
	ctx := context.Background()

	store, err := NewSecureStore(path, "right-secret")
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "k", "v"))

	intruder, err := NewSecureStore(path, "wrong-secret")
	require.NoError(t, err)

	_, err = intruder.Get(ctx, "k")
	assert.Error(t, err)
}

func TestSecureStore_EmptySecretRejected(t *testing.T) {
	_, err := NewSecureStore(filepath.Join(t.TempDir(), "secure.json"), "")
	assert.Error(t, err)
}

func TestFileStore_RoundTripAndDelete(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "plain.json"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v"))

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)

	require.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.json")
	ctx := context.Background()

	require.NoError(t, NewFileStore(path).Set(ctx, "k", "v"))

	value, err := NewFileStore(path).Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}
