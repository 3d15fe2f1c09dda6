// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"
)

// ClientInput defines the data required to register a client.
type ClientInput struct {
	Name    string `json:"name" validate:"min=2"`
	Address string `json:"address" validate:"min=4"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// ClientUsecase defines the client-related business operations.
type ClientUsecase interface {
	// CreateClient records caller as the owner of a new client.
	CreateClient(ctx context.Context, caller string, input *ClientInput) (*entity.Client, error)
	GetClient(ctx context.Context, id uint64) (*entity.Client, error)
	ListClients(ctx context.Context) ([]*entity.Client, error)
}
