package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tattooer/internal/appstate"
	"tattooer/internal/domain/entity"
	domainerrors "tattooer/internal/domain/errors"
	"tattooer/internal/domain/repository"
	mockRepo "tattooer/internal/mocks/repository"
	mockService "tattooer/internal/mocks/service"
	"tattooer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMocks struct {
	artists *mockRepo.MockArtistRepository
	hasher  *mockService.MockPasswordHasher
	tokens  *mockService.MockTokenService
}

// newAuthServiceForTest wires the auth service against a real account cache
// (over an in-memory store) so sign-in side effects are observable.
func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, *authMocks, usecase.AccountUsecase, *appstate.Store) {
	t.Helper()

	mocks := &authMocks{
		artists: mockRepo.NewMockArtistRepository(t),
		hasher:  mockService.NewMockPasswordHasher(t),
		tokens:  mockService.NewMockTokenService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	accounts := NewAccountService(AccountServiceParams{
		Store:  newFakeKVStore(),
		Logger: logger,
	})
	state := appstate.NewStore()

	svc := NewAuthService(AuthServiceParams{
		ArtistRepo:   mocks.artists,
		Hasher:       mocks.hasher,
		TokenService: mocks.tokens,
		Accounts:     accounts,
		State:        state,
		Logger:       logger,
	})

	return svc, mocks, accounts, state
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, mocks, accounts, state := newAuthServiceForTest(t)
	ctx := context.Background()

	mocks.artists.EXPECT().FindByEmail(ctx, "nora@studio.example").
		Return(nil, repository.ErrArtistNotFound)
	mocks.hasher.EXPECT().ValidatePasswordStrength("correct horse battery").Return(nil)
	mocks.hasher.EXPECT().Hash("correct horse battery").Return("$2a$hashed", nil)
	mocks.artists.EXPECT().Create(ctx, mock.MatchedBy(func(artist *entity.Artist) bool {
		return artist.Email == "nora@studio.example" &&
			artist.ID != uuid.Nil &&
			artist.PasswordHash == "$2a$hashed"
	})).Return(nil)
	mocks.tokens.EXPECT().GenerateTokens(mock.AnythingOfType("uuid.UUID")).
		Return("access-token", "refresh-token", nil)

	output, err := svc.Register(ctx, &usecase.RegisterInput{
		Name:     "Nora Lindqvist",
		Email:    "  Nora@Studio.example ",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	assert.Equal(t, "nora@studio.example", output.Artist.Email)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)

	// Registration lands in the quick-switch cache and app state.
	assert.True(t, accounts.HasAccount(ctx, "nora@studio.example"))
	cached := accounts.GetAccount(ctx, "nora@studio.example")
	require.NotNil(t, cached)
	assert.Equal(t, "correct horse battery", cached.Password)
	assert.Equal(t, entity.AccountTypeArtist, cached.AccountType)

	snapshot := state.Snapshot()
	require.NotNil(t, snapshot.CurrentArtist)
	assert.Equal(t, output.Artist.ID, snapshot.CurrentArtist.ID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, mocks, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	mocks.artists.EXPECT().FindByEmail(ctx, "taken@studio.example").
		Return(&entity.Artist{ID: uuid.New(), Email: "taken@studio.example"}, nil)

	_, err := svc.Register(ctx, &usecase.RegisterInput{
		Name:     "Someone",
		Email:    "taken@studio.example",
		Password: "irrelevant-pass",
	})

	assert.ErrorIs(t, err, domainerrors.ErrArtistAlreadyExists)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	svc, mocks, accounts, state := newAuthServiceForTest(t)
	ctx := context.Background()

	mocks.artists.EXPECT().FindByEmail(ctx, "nora@studio.example").
		Return(nil, repository.ErrArtistNotFound)
	mocks.hasher.EXPECT().ValidatePasswordStrength("short1!").
		Return(domainerrors.ErrPasswordStrength.WrapMessage("password must be at least 8 characters long"))

	_, err := svc.Register(ctx, &usecase.RegisterInput{
		Name:     "Nora Lindqvist",
		Email:    "nora@studio.example",
		Password: "short1!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

	// A rejected registration never hashes, persists or signs anything in:
	// the mocks would flag unexpected Hash/Create/GenerateTokens calls.
	assert.False(t, accounts.HasAccount(ctx, "nora@studio.example"))
	assert.Nil(t, state.Snapshot().CurrentArtist)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, mocks, accounts, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	artistID := uuid.New()
	mocks.artists.EXPECT().FindByEmail(ctx, "nora@studio.example").
		Return(&entity.Artist{
			ID:           artistID,
			Email:        "nora@studio.example",
			Name:         "Nora Lindqvist",
			PasswordHash: "$2a$hashed",
		}, nil)
	mocks.hasher.EXPECT().Check("correct horse battery", "$2a$hashed").Return(true)
	mocks.tokens.EXPECT().GenerateTokens(artistID).Return("access-token", "refresh-token", nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "Nora@Studio.example",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	assert.Equal(t, artistID, output.Artist.ID)
	assert.True(t, accounts.HasAccount(ctx, "nora@studio.example"))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, mocks, accounts, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	mocks.artists.EXPECT().FindByEmail(ctx, "nora@studio.example").
		Return(&entity.Artist{ID: uuid.New(), Email: "nora@studio.example", PasswordHash: "$2a$hashed"}, nil)
	mocks.hasher.EXPECT().Check("wrong", "$2a$hashed").Return(false)

	_, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "nora@studio.example",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.False(t, accounts.HasAccount(ctx, "nora@studio.example"),
		"a rejected login must not touch the credential cache")
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, mocks, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	mocks.artists.EXPECT().FindByEmail(ctx, "ghost@studio.example").
		Return(nil, repository.ErrArtistNotFound)

	_, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@studio.example",
		Password: "whatever",
	})

	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_TokenGenerationFailure(t *testing.T) {
	svc, mocks, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	artistID := uuid.New()
	mocks.artists.EXPECT().FindByEmail(ctx, "nora@studio.example").
		Return(&entity.Artist{ID: artistID, Email: "nora@studio.example", PasswordHash: "$2a$hashed"}, nil)
	mocks.hasher.EXPECT().Check("correct horse battery", "$2a$hashed").Return(true)
	mocks.tokens.EXPECT().GenerateTokens(artistID).Return("", "", errors.New("signing key missing"))

	_, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "nora@studio.example",
		Password: "correct horse battery",
	})

	assert.ErrorIs(t, err, domainerrors.ErrTokenGenerationFailed)
}
