package usecase

import (
	"context"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"
)

// --- Input DTOs ---

// CredentialsInput carries a principal name and secret.
type CredentialsInput struct {
	Name   string `json:"name" validate:"min=3"`
	Secret string `json:"secret" validate:"min=8"`
}

// RefreshInput carries a refresh token.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the principal and a fresh token pair.
type AuthOutput struct {
	Principal    *entity.Principal `json:"principal,omitempty"`
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
}

// IdentityUsecase issues the caller identities that own clients and items.
type IdentityUsecase interface {
	Register(ctx context.Context, input *CredentialsInput) (*AuthOutput, error)
	Login(ctx context.Context, input *CredentialsInput) (*AuthOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*AuthOutput, error)
}
