package usecase

import (
	"context"

	"tattooer/internal/domain/entity"
)

// RegisterInput is the payload for creating a new artist account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput is the payload for an email/password sign-in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthOutput carries the signed-in artist and their token pair.
type AuthOutput struct {
	Artist       *entity.Artist `json:"artist"`
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
}

// AuthUsecase handles artist registration and sign-in. A successful login
// also upserts the local credential cache so the account appears in the
// quick-switch list.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
