package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tattooer/internal/domain/entity"
	domainerrors "tattooer/internal/domain/errors"
	"tattooer/internal/domain/repository"
	mockRepo "tattooer/internal/mocks/repository"
	mockService "tattooer/internal/mocks/service"
	"tattooer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionServiceForTest(t *testing.T) (usecase.SessionUsecase, *mockRepo.MockSessionRepository, *mockService.MockQRCodeService) {
	sessions := mockRepo.NewMockSessionRepository(t)
	qr := mockService.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewSessionService(SessionServiceParams{
		SessionRepo: sessions,
		QRCode:      qr,
		Logger:      logger,
	})

	return svc, sessions, qr
}

func TestSessionService_CheckInCode_Success(t *testing.T) {
	svc, sessions, qr := newSessionServiceForTest(t)
	ctx := context.Background()

	sessionID := uuid.New()
	sessions.EXPECT().FindByID(ctx, sessionID).Return(&entity.Session{
		ID:         sessionID,
		ClientName: "Mia",
		Start:      time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC),
		End:        time.Date(2025, 8, 1, 14, 0, 0, 0, time.UTC),
		Status:     entity.SessionScheduled,
	}, nil)
	qr.EXPECT().GenerateCheckInQR(sessionID).Return([]byte("png-bytes"), nil)

	png, err := svc.CheckInCode(ctx, sessionID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestSessionService_CheckInCode_MissingSessionID(t *testing.T) {
	svc, _, _ := newSessionServiceForTest(t)

	_, err := svc.CheckInCode(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSessionService_CheckInCode_SessionNotFound(t *testing.T) {
	svc, sessions, _ := newSessionServiceForTest(t)
	ctx := context.Background()

	sessionID := uuid.New()
	sessions.EXPECT().FindByID(ctx, sessionID).Return(nil, repository.ErrSessionNotFound)

	_, err := svc.CheckInCode(ctx, sessionID)

	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestSessionService_CheckInCode_CancelledSession(t *testing.T) {
	svc, sessions, _ := newSessionServiceForTest(t)
	ctx := context.Background()

	sessionID := uuid.New()
	sessions.EXPECT().FindByID(ctx, sessionID).Return(&entity.Session{
		ID:     sessionID,
		Status: entity.SessionCancelled,
	}, nil)

	_, err := svc.CheckInCode(ctx, sessionID)

	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound,
		"cancelled sessions must not produce a scannable code")
}
