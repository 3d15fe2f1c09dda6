package auth

import (
	"github.com/calvin-79/food-delivery-tracking/config"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher. A cost outside bcrypt's
// accepted range falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext secret using bcrypt.
func (h *bcryptHasher) Hash(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)

	return string(bytes), err
}

// Check compares a plaintext secret with a bcrypt hash.
func (h *bcryptHasher) Check(secret, hash string) bool {
	// err is nil if the secret and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
