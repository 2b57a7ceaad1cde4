package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SessionUsecase exposes session-level operations beyond calendar rendering.
type SessionUsecase interface {
	// CheckInCode renders the PNG QR code a client scans to check in for
	// the session. The session must exist and not be cancelled.
	CheckInCode(ctx context.Context, sessionID uuid.UUID) ([]byte, error)
}
