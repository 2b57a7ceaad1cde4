package entity

import (
	"time"

	"github.com/google/uuid"
)

// Artist is a registered studio artist account. It is the authentication
// subject for the API and the owner of every calendar source record.
type Artist struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Photo        string    `json:"photo,omitempty"`
	PasswordHash string    `json:"-"` // bcrypt hash, never the raw password
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
