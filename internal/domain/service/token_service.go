package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates the access/refresh token pair used by
// the API authentication middleware.
type TokenService interface {
	GenerateTokens(artistID uuid.UUID) (accessToken string, refreshToken string, err error)
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
	RefreshTokenDuration() time.Duration
}
