// Package appstate owns the global application state as a single
// serializable value. All reads go through selectors and all writes through
// the action methods on Store; nothing outside this package mutates State.
package appstate

import (
	"sync"

	"tattooer/internal/domain/entity"
)

// ScreenMode is the top-level mode of the client shell.
type ScreenMode string

const (
	ModeOnboarding ScreenMode = "onboarding"
	ModeArtist     ScreenMode = "artist"
	ModeClient     ScreenMode = "client"
)

// State is the complete application state snapshot.
type State struct {
	Mode                 ScreenMode     `json:"mode"`
	SplashVisible        bool           `json:"splashVisible"`
	PurchaseModalVisible bool           `json:"purchaseModalVisible"`
	CurrentArtist        *entity.Artist `json:"currentArtist,omitempty"`
}

// Store holds the state and guards it for concurrent access. Snapshots are
// copies; holding one never observes later writes.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore creates a store in the initial boot state.
func NewStore() *Store {
	return &Store{
		state: State{
			Mode:          ModeOnboarding,
			SplashVisible: true,
		},
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Select reads a derived value from the current state.
func Select[T any](s *Store, selector func(State) T) T {
	return selector(s.Snapshot())
}

// SetMode switches the top-level screen mode.
func (s *Store) SetMode(mode ScreenMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Mode = mode
}

// SetSplashVisible shows or hides the splash overlay.
func (s *Store) SetSplashVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SplashVisible = visible
}

// SetPurchaseModalVisible shows or hides the purchase modal.
func (s *Store) SetPurchaseModalVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PurchaseModalVisible = visible
}

// SetCurrentArtist publishes the authenticated artist and flips the shell
// into artist mode. A nil artist resets to onboarding.
func (s *Store) SetCurrentArtist(artist *entity.Artist) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.CurrentArtist = artist
	if artist != nil {
		s.state.Mode = ModeArtist
		s.state.SplashVisible = false
	} else {
		s.state.Mode = ModeOnboarding
	}
}

// Reset restores the initial boot state.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{
		Mode:          ModeOnboarding,
		SplashVisible: true,
	}
}
