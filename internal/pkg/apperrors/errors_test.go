package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", ErrValidation, http.StatusBadRequest},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"invalid token", ErrInvalidToken, http.StatusUnauthorized},
		{"wrong otp", ErrOTPInvalid, http.StatusUnauthorized},
		{"exhausted otp", ErrOTPTooManyAttempts, http.StatusUnauthorized},
		// Expired and missing codes are auth failures, not missing
		// resources: the client must re-authenticate.
		{"expired or missing otp", ErrOTPNotFound, http.StatusUnauthorized},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"pending account", ErrAccountPending, http.StatusForbidden},
		{"rejected account", ErrAccountRejected, http.StatusForbidden},
		{"conflict", ErrConflict, http.StatusConflict},
		{"wrapped sentinel", fmt.Errorf("verify: %w", ErrOTPNotFound), http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusCode(tt.err))
		})
	}
}
