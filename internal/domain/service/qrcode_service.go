package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates check-in QR codes for booked sessions.
type QRCodeService interface {
	// GenerateCheckInQR renders a PNG QR code encoding the session check-in payload.
	GenerateCheckInQR(sessionID uuid.UUID) ([]byte, error)

	// ParseCheckInQR decodes a scanned payload back into the session ID.
	ParseCheckInQR(qrData string) (uuid.UUID, error)
}
