// Package apperrors defines the error taxonomy surfaced to API clients.
// Usecases wrap these sentinels with %w; the handler layer maps them to
// HTTP statuses in one place.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")

	ErrOTPNotFound        = errors.New("OTP not found or expired")
	ErrOTPInvalid         = errors.New("invalid OTP code")
	ErrOTPTooManyAttempts = errors.New("too many OTP attempts")
	ErrAccountPending     = errors.New("account is pending approval")
	ErrAccountRejected    = errors.New("account has been rejected")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// StatusCode maps an error chain to the HTTP status it should surface as.
// Unknown errors map to 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	// Every OTP terminal state answers 401: the client's only recourse
	// is to re-authenticate, whether the code was wrong, exhausted, or
	// the row expired.
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrOTPInvalid), errors.Is(err, ErrOTPTooManyAttempts),
		errors.Is(err, ErrOTPNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrAccountPending),
		errors.Is(err, ErrAccountRejected):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
