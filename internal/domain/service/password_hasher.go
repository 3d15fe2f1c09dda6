// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for secret hashing and verification.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext secret.
	Hash(secret string) (string, error)

	// Check compares a plaintext secret with a hash to see if they match.
	Check(secret, hash string) bool
}
