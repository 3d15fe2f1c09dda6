package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens. The subject is the
// caller identity recorded as owner on clients and items.
type Claims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for an identity.
	GenerateTokens(identity string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken parses an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken parses a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)
}
