package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/alumnet/backend/services/auth AuthRepo

// AuthRepo is the persistence interface for authentication
type AuthRepo interface {
	// User lookups
	GetUserByMSISDN(ctx context.Context, msisdn string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// CreateUser inserts the user with its default role assigned inside
	// the same transaction; no read path ever patches a missing role.
	CreateUser(ctx context.Context, user *models.User) error

	// OTP lifecycle. ReplaceOTP deletes all prior rows for the number
	// and inserts the new one in a single transaction, keeping at most
	// one live row per MSISDN.
	ReplaceOTP(ctx context.Context, otp *models.OTP) error
	// GetLatestOTP returns the newest non-expired row, or
	// apperrors.ErrOTPNotFound when none exists.
	GetLatestOTP(ctx context.Context, msisdn string) (*models.OTP, error)
	IncrementOTPAttempts(ctx context.Context, id uuid.UUID) error
	DeleteOTP(ctx context.Context, id uuid.UUID) error
}
