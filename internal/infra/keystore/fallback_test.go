package keystore

import (
	"context"
	"log/slog"
	"testing"

	"tattooer/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory KeyValueStore with optional fault injection.
type memoryStore struct {
	values  map[string]string
	failGet bool
	failSet bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}}
}

func (s *memoryStore) Get(ctx context.Context, key string) (string, error) {
	if s.failGet {
		return "", errors.New("injected get failure")
	}
	value, ok := s.values[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}

	return value, nil
}

func (s *memoryStore) Set(ctx context.Context, key, value string) error {
	if s.failSet {
		return errors.New("injected set failure")
	}
	s.values[key] = value

	return nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	delete(s.values, key)

	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestFallbackStore_Get_PrimaryHit(t *testing.T) {
	primary := newMemoryStore()
	secondary := newMemoryStore()
	primary.values["k"] = "from-primary"
	secondary.values["k"] = "from-secondary"

	store := NewFallbackStore(primary, secondary, testLogger())

	value, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "from-primary", value)
}

func TestFallbackStore_Get_SecondaryFallbackRepopulatesPrimary(t *testing.T) {
	primary := newMemoryStore()
	secondary := newMemoryStore()
	secondary.values["k"] = "survivor"

	store := NewFallbackStore(primary, secondary, testLogger())

	value, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "survivor", value)

	// Self-heal: a primary-only read now succeeds.
	healed, err := primary.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "survivor", healed)
}

func TestFallbackStore_Get_MissEverywhere(t *testing.T) {
	store := NewFallbackStore(newMemoryStore(), newMemoryStore(), testLogger())

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestFallbackStore_Set_WritesBothBackends(t *testing.T) {
	primary := newMemoryStore()
	secondary := newMemoryStore()
	store := NewFallbackStore(primary, secondary, testLogger())

	require.NoError(t, store.Set(context.Background(), "k", "v"))
	assert.Equal(t, "v", primary.values["k"])
	assert.Equal(t, "v", secondary.values["k"])
}

func TestFallbackStore_Set_PartialWriteSucceeds(t *testing.T) {
	primary := newMemoryStore()
	primary.failSet = true
	secondary := newMemoryStore()
	store := NewFallbackStore(primary, secondary, testLogger())

	require.NoError(t, store.Set(context.Background(), "k", "v"))
	assert.Equal(t, "v", secondary.values["k"])
}

func TestFallbackStore_Set_BothBackendsFailing(t *testing.T) {
	primary := newMemoryStore()
	primary.failSet = true
	secondary := newMemoryStore()
	secondary.failSet = true
	store := NewFallbackStore(primary, secondary, testLogger())

	assert.Error(t, store.Set(context.Background(), "k", "v"))
}

func TestFallbackStore_Delete_RemovesFromBoth(t *testing.T) {
	primary := newMemoryStore()
	secondary := newMemoryStore()
	primary.values["k"] = "v"
	secondary.values["k"] = "v"
	store := NewFallbackStore(primary, secondary, testLogger())

	require.NoError(t, store.Delete(context.Background(), "k"))
	assert.Empty(t, primary.values)
	assert.Empty(t, secondary.values)
}

func TestFallbackStore_Get_PrimaryErrorFallsBack(t *testing.T) {
	primary := newMemoryStore()
	primary.failGet = true
	secondary := newMemoryStore()
	secondary.values["k"] = "v"
	store := NewFallbackStore(primary, secondary, testLogger())

	value, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}
