package impl

import (
	"context"
	"log/slog"

	"tattooer/internal/domain/entity"
	domainerrors "tattooer/internal/domain/errors"
	"tattooer/internal/domain/repository"
	"tattooer/internal/domain/service"
	"tattooer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
	qrcode      service.QRCodeService
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for the session service, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo repository.SessionRepository
	QRCode      service.QRCodeService
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		sessionRepo: params.SessionRepo,
		qrcode:      params.QRCode,
		logger:      params.Logger,
	}
}

// CheckInCode renders the check-in QR code for an existing session.
func (srv *sessionService) CheckInCode(ctx context.Context, sessionID uuid.UUID) ([]byte, error) {
	if sessionID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "session id is required")
	}

	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.WithStack(domainerrors.ErrSessionNotFound)
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	if session.Status == entity.SessionCancelled {
		return nil, domainerrors.ErrSessionNotFound.WrapMessage("session is cancelled")
	}

	png, err := srv.qrcode.GenerateCheckInQR(session.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate check-in code")
	}

	return png, nil
}
