package validation

import (
	"testing"

	apperror "github.com/brigere/shield-api/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Chain    string `validate:"omitempty,min=3,max=50"`
}

func TestStruct(t *testing.T) {
	t.Run("valid input passes", func(t *testing.T) {
		err := Struct(&sampleInput{Email: "a@x.com", Password: "Passw0rd!"})
		assert.NoError(t, err)
	})

	tests := []struct {
		name    string
		input   sampleInput
		wantMsg string
	}{
		{
			name:    "missing email",
			input:   sampleInput{Password: "Passw0rd!"},
			wantMsg: "email is required",
		},
		{
			name:    "malformed email",
			input:   sampleInput{Email: "not-an-email", Password: "Passw0rd!"},
			wantMsg: "Invalid email format",
		},
		{
			name:    "missing password",
			input:   sampleInput{Email: "a@x.com"},
			wantMsg: "password is required",
		},
		{
			name:    "too short field",
			input:   sampleInput{Email: "a@x.com", Password: "Passw0rd!", Chain: "ab"},
			wantMsg: "chain must be at least 3 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.input)
			require.Error(t, err)

			var vErr *apperror.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantMsg, vErr.Message)
		})
	}
}
