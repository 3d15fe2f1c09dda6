package repository

import (
	"context"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for principal persistence.
var (
	// ErrPrincipalNotFound is returned when no principal has the name.
	ErrPrincipalNotFound = errors.New("principal not found")
	// ErrDuplicatePrincipal is returned when the name is already registered.
	ErrDuplicatePrincipal = errors.New("principal already exists")
)

// PrincipalRepository stores sign-in identities keyed by unique name.
type PrincipalRepository interface {
	// CreatePrincipal persists a new principal or returns ErrDuplicatePrincipal.
	CreatePrincipal(ctx context.Context, principal *entity.Principal) error

	// FindPrincipalByName returns the principal or ErrPrincipalNotFound.
	FindPrincipalByName(ctx context.Context, name string) (*entity.Principal, error)
}
