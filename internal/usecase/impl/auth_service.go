package impl

import (
	"context"
	"log/slog"
	"time"

	"tattooer/internal/appstate"
	deliverycontext "tattooer/internal/delivery/context"
	"tattooer/internal/domain/entity"
	domainerrors "tattooer/internal/domain/errors"
	"tattooer/internal/domain/repository"
	"tattooer/internal/domain/service"
	"tattooer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	artistRepo   repository.ArtistRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	accounts     usecase.AccountUsecase
	state        *appstate.Store
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for the auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	ArtistRepo   repository.ArtistRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Accounts     usecase.AccountUsecase
	State        *appstate.Store
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		artistRepo:   params.ArtistRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		accounts:     params.Accounts,
		state:        params.State,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new artist account and signs it in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	if _, err := srv.artistRepo.FindByEmail(ctx, email); err == nil {
		return nil, errors.WithStack(domainerrors.ErrArtistAlreadyExists)
	} else if !errors.Is(err, repository.ErrArtistNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing artist")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration",
			slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrPasswordHashFailed)
	}

	artist := &entity.Artist{
		ID:           uuid.New(),
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := srv.artistRepo.Create(ctx, artist); err != nil {
		return nil, errors.Wrap(err, "failed to create artist")
	}

	srv.log(ctx).Info("Artist registered", slog.Any("artistID", artist.ID), slog.String("email", email))

	return srv.signIn(ctx, artist, input.Password)
}

// Login verifies the credentials and signs the artist in. On success the
// account lands in the local credential cache for quick switching.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	artist, err := srv.artistRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to find artist by email")
	}

	if !srv.hasher.Check(input.Password, artist.PasswordHash) {
		srv.log(ctx).Warn("Login rejected, password mismatch", slog.String("email", email))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	return srv.signIn(ctx, artist, input.Password)
}

// signIn issues the token pair, caches the credentials and publishes the
// signed-in artist to the app state.
func (srv *authService) signIn(ctx context.Context, artist *entity.Artist, password string) (*usecase.AuthOutput, error) {
	access, refresh, err := srv.tokenService.GenerateTokens(artist.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("artistID", artist.ID), slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrTokenGenerationFailed)
	}

	// Cache failures are invisible here: the account service degrades to a
	// no-op and the sign-in still succeeds.
	srv.accounts.SaveAccount(ctx, &usecase.SaveAccountInput{
		Email:       artist.Email,
		Password:    password,
		AccountType: entity.AccountTypeArtist,
		FullName:    artist.Name,
		Photo:       artist.Photo,
	})

	srv.state.SetCurrentArtist(artist)

	return &usecase.AuthOutput{
		Artist:       artist,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
