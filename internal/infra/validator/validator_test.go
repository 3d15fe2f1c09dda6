package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type samplePayload struct {
	Name    string `json:"name" validate:"min=2"`
	Address string `json:"address" validate:"min=4"`
	Rating  uint64 `json:"rating" validate:"min=1,max=5"`
	Email   string `json:"email" validate:"omitempty,email"`
	Note    string `json:"note" validate:"omitempty,notblank"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		payload samplePayload
		wantErr []string
	}{
		{
			name:    "valid",
			payload: samplePayload{Name: "Jo", Address: "Main", Rating: 5},
		},
		{
			name:    "short name",
			payload: samplePayload{Name: "J", Address: "Main", Rating: 3},
			wantErr: []string{"name must be at least 2 characters"},
		},
		{
			name:    "several violations",
			payload: samplePayload{Name: "Jo", Address: "Elm", Rating: 9, Email: "nope"},
			wantErr: []string{
				"address must be at least 4 characters",
				"rating must be at most 5",
				"email must be a valid email address",
			},
		},
		{
			name:    "whitespace note",
			payload: samplePayload{Name: "Jo", Address: "Main", Rating: 2, Note: " \t "},
			wantErr: []string{"note must not be blank"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.payload)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)

				return
			}
			if assert.Error(t, err) {
				for _, msg := range tt.wantErr {
					assert.Contains(t, err.Error(), msg)
				}
			}
		})
	}
}

func TestValidator_NonStruct(t *testing.T) {
	assert.Error(t, New().Validate("not a struct"))
}
