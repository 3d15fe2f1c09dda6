// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/calvin-79/food-delivery-tracking/config"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/service"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	accessTTL, refreshTTL := 15*time.Minute, 7*24*time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTTL > 0 {
			accessTTL = cfg.Auth.AccessTTL
		}
		if cfg.Auth.RefreshTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for the identity.
func (s *jwtService) GenerateTokens(identity string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(identity, s.accessTTL, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(identity, s.refreshTTL, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, s.accessSecret, service.TokenTypeAccess)
}

func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, s.refreshSecret, service.TokenTypeRefresh)
}

func (s *jwtService) validate(tokenString, secret, tokenType string) (*service.Claims, error) {
	claims := new(service.Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Type != tokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(identity string, ttl time.Duration, secret, tokenType string) (string, error) {
	issuedAt := s.now()
	claims := service.Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))

	return signed, errors.Wrap(err, "sign token")
}
