package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateCheckInQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	sessionID := uuid.New()

	qrBytes, err := service.GenerateCheckInQR(sessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateCheckInQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GenerateCheckInQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseCheckInQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	sessionID := uuid.New()

	payload := checkInPayload{
		SessionID: sessionID.String(),
		Type:      payloadTypeCheckIn,
	}
	jsonData, err := json.Marshal(payload)
	require.NoError(t, err)

	parsedID, err := service.ParseCheckInQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, sessionID, parsedID)
}

func TestQRCodeService_ParseCheckInQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseCheckInQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseCheckInQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload := checkInPayload{
		SessionID: uuid.New().String(),
		Type:      "invalid_type",
	}
	jsonData, err := json.Marshal(payload)
	require.NoError(t, err)

	_, err = service.ParseCheckInQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseCheckInQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload := checkInPayload{
		SessionID: "not-a-valid-uuid",
		Type:      payloadTypeCheckIn,
	}
	jsonData, err := json.Marshal(payload)
	require.NoError(t, err)

	_, err = service.ParseCheckInQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse session ID")
}
