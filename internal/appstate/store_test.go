package appstate

import (
	"testing"

	"tattooer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStore_InitialState(t *testing.T) {
	store := NewStore()

	state := store.Snapshot()
	assert.Equal(t, ModeOnboarding, state.Mode)
	assert.True(t, state.SplashVisible)
	assert.Nil(t, state.CurrentArtist)
}

func TestStore_SetCurrentArtist_SwitchesMode(t *testing.T) {
	store := NewStore()
	artist := &entity.Artist{ID: uuid.New(), Name: "Mara"}

	store.SetCurrentArtist(artist)

	state := store.Snapshot()
	assert.Equal(t, ModeArtist, state.Mode)
	assert.False(t, state.SplashVisible)
	assert.Equal(t, artist, state.CurrentArtist)
}

func TestStore_SetCurrentArtist_NilResetsToOnboarding(t *testing.T) {
	store := NewStore()
	store.SetCurrentArtist(&entity.Artist{ID: uuid.New()})

	store.SetCurrentArtist(nil)

	state := store.Snapshot()
	assert.Equal(t, ModeOnboarding, state.Mode)
	assert.Nil(t, state.CurrentArtist)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store := NewStore()

	snapshot := store.Snapshot()
	store.SetMode(ModeClient)

	assert.Equal(t, ModeOnboarding, snapshot.Mode)
	assert.Equal(t, ModeClient, store.Snapshot().Mode)
}

func TestSelect(t *testing.T) {
	store := NewStore()
	store.SetCurrentArtist(&entity.Artist{ID: uuid.New(), Name: "Io"})

	name := Select(store, func(s State) string {
		if s.CurrentArtist == nil {
			return ""
		}

		return s.CurrentArtist.Name
	})

	assert.Equal(t, "Io", name)
}

func TestStore_Reset(t *testing.T) {
	store := NewStore()
	store.SetCurrentArtist(&entity.Artist{ID: uuid.New()})
	store.SetPurchaseModalVisible(true)

	store.Reset()

	state := store.Snapshot()
	assert.Equal(t, ModeOnboarding, state.Mode)
	assert.True(t, state.SplashVisible)
	assert.False(t, state.PurchaseModalVisible)
	assert.Nil(t, state.CurrentArtist)
}
