package auth

import (
	"testing"

	"github.com/calvin-79/food-delivery-tracking/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, hasher.Check("correct horse battery", hash))
	assert.False(t, hasher.Check("wrong secret", hash))
	assert.False(t, hasher.Check("correct horse battery", "not-a-hash"))
}

func TestBcryptHasher_CostFallback(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "no auth section", cfg: &config.Config{}, want: bcrypt.DefaultCost},
		{name: "below minimum", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 1}}, want: bcrypt.DefaultCost},
		{name: "configured", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}
