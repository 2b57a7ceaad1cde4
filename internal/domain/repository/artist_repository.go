package repository

import (
	"context"
	"errors"

	"tattooer/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for artist persistence. The application layer
// handles these without depending on database-specific errors.
var (
	// ErrArtistNotFound is returned when an artist is not found.
	ErrArtistNotFound = errors.New("artist not found")
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
)

// ArtistRepository defines the standard operations for artist persistence.
type ArtistRepository interface {
	// FindByID retrieves a single artist by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error)

	// FindByEmail retrieves a single artist by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Artist, error)

	// Create persists a new artist entity to the storage.
	Create(ctx context.Context, artist *entity.Artist) error
}
