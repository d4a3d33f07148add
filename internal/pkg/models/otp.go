package models

import (
	"time"

	"github.com/google/uuid"
)

// OTP represents a one-time password issued for login.
// At most one live row exists per MSISDN; requesting a new code
// deletes any previous rows for that number.
type OTP struct {
	ID        uuid.UUID `json:"id" db:"id"`
	MSISDN    string    `json:"msisdn" db:"msisdn"`
	CodeHash  string    `json:"-" db:"code_hash"`
	Attempts  int       `json:"attempts" db:"attempts"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CheckStatusRequest is the payload for the account status probe
type CheckStatusRequest struct {
	MobileNumber string `json:"mobileNumber" validate:"required"`
}

// CheckStatusResponse reports whether an account exists and its approval state
type CheckStatusResponse struct {
	Exists  bool          `json:"exists"`
	Status  AccountStatus `json:"status,omitempty"`
	Message string        `json:"message"`
}

// RequestOTPRequest is the payload for requesting a login code
type RequestOTPRequest struct {
	MobileNumber string `json:"mobileNumber" validate:"required,min=10"`
}

// RequestOTPResponse acknowledges OTP dispatch; Code is echoed in debug builds only
type RequestOTPResponse struct {
	Code string `json:"otp,omitempty"`
}

// VerifyOTPRequest is the payload for verifying a login code
type VerifyOTPRequest struct {
	MobileNumber string `json:"mobileNumber" validate:"required,min=10"`
	OTP          string `json:"otp" validate:"required"`
}

// RefreshTokenRequest is the payload for refreshing an access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// AuthResponse is returned after successful verification or refresh
type AuthResponse struct {
	User         *User  `json:"user,omitempty"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}
