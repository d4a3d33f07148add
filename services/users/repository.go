package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/models"
)

// UserRepo defines the user data access layer
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/alumnet/backend/services/users UserRepo
type UserRepo interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) error
	SetAvatarURL(ctx context.Context, id uuid.UUID, url string) error
	ListByStatus(ctx context.Context, status models.AccountStatus, p models.Pagination) ([]models.User, int64, error)
	ListAll(ctx context.Context, p models.Pagination) ([]models.User, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.AccountStatus) error
	CollectStats(ctx context.Context) (*models.AdminStats, error)
}
