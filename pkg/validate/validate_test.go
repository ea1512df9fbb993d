package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Week     int    `json:"week" validate:"min=1,max=53"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=User Admin"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name          string
		input         sample
		expectedError string
	}{
		{
			name:  "Valid",
			input: sample{Email: "ada@example.com", Password: "secret1", Week: 10, Role: "Admin"},
		},
		{
			name:          "Missing email",
			input:         sample{Password: "secret1", Week: 10},
			expectedError: "email is required",
		},
		{
			name:          "Malformed email",
			input:         sample{Email: "not-an-email", Password: "secret1", Week: 10},
			expectedError: "email must be a valid email address",
		},
		{
			name:          "Short password",
			input:         sample{Email: "ada@example.com", Password: "123", Week: 10},
			expectedError: "password must be at least 6 characters long",
		},
		{
			name:          "Week out of range",
			input:         sample{Email: "ada@example.com", Password: "secret1", Week: 54},
			expectedError: "week must be at most 53",
		},
		{
			name:          "Unknown role",
			input:         sample{Email: "ada@example.com", Password: "secret1", Week: 1, Role: "Root"},
			expectedError: "role must be one of [User Admin]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.expectedError == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.expectedError)
			}
		})
	}
}
