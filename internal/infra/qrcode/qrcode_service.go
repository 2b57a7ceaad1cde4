package qrcode

import (
	"encoding/json"
	"fmt"

	"tattooer/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// checkInPayload is the JSON payload encoded into a session check-in code.
type checkInPayload struct {
	SessionID string `json:"session_id"`
	Type      string `json:"type"`
}

const payloadTypeCheckIn = "session_checkin"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateCheckInQR renders a PNG QR code encoding the session check-in payload.
func (s *qrcodeService) GenerateCheckInQR(sessionID uuid.UUID) ([]byte, error) {
	payload := checkInPayload{
		SessionID: sessionID.String(),
		Type:      payloadTypeCheckIn,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseCheckInQR parses a scanned payload and returns the session ID.
func (s *qrcodeService) ParseCheckInQR(qrData string) (uuid.UUID, error) {
	var payload checkInPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if payload.Type != payloadTypeCheckIn {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", payload.Type)
	}

	sessionID, err := uuid.Parse(payload.SessionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse session ID: %w", err)
	}

	return sessionID, nil
}
