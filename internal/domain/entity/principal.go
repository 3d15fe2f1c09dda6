package entity

import (
	"time"

	"github.com/google/uuid"
)

// Principal is a caller identity able to sign in. Its ID string is the owner
// identity recorded on clients and items.
type Principal struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	SecretHash string    `json:"-"` // bcrypt hash, never the secret itself
	CreatedAt  time.Time `json:"created_at"`
}

// Identity returns the string form recorded as record owner.
func (p *Principal) Identity() string {
	return p.ID.String()
}
