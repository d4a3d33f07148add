package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMSISDN(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{
			name:     "plain digits",
			input:    "6281234567890",
			expected: "6281234567890",
		},
		{
			name:     "with plus prefix",
			input:    "+6281234567890",
			expected: "6281234567890",
		},
		{
			name:     "with dashes and spaces",
			input:    "+62 812-3456-7890",
			expected: "6281234567890",
		},
		{
			name:     "exactly ten digits",
			input:    "0812345678",
			expected: "0812345678",
		},
		{
			name:        "too short",
			input:       "081234567",
			expectError: true,
		},
		{
			name:        "contains letters",
			input:       "08123abc678",
			expectError: true,
		},
		{
			name:        "empty",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeMSISDN(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
