package auth

import (
	"context"

	"github.com/alumnet/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/alumnet/backend/services/auth AuthUC

// AuthUC is the authentication usecase interface
type AuthUC interface {
	// CheckStatus reports whether an account exists for the number and
	// its approval state.
	CheckStatus(ctx context.Context, mobileNumber string) (*models.CheckStatusResponse, error)

	// RequestOTP issues a fresh one-time code. The returned code is
	// exposed to the client in debug builds only.
	RequestOTP(ctx context.Context, mobileNumber string) (string, error)

	// VerifyOTP validates the code and issues a token pair. Unknown
	// numbers with a valid code get an account created on the fly.
	VerifyOTP(ctx context.Context, mobileNumber, code string) (*models.AuthResponse, error)

	// RefreshToken validates a refresh token and reissues both tokens.
	RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
}
