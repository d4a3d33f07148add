package users

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/models"
)

// UserUC defines the user profile and account administration usecase
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/alumnet/backend/services/users UserUC
type UserUC interface {
	GetProfile(ctx context.Context, viewerID uuid.UUID, viewerRole models.Role, targetID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, fileName string, file io.Reader, size int64) (*models.User, error)
	ListUsers(ctx context.Context, status string, p models.Pagination) (*models.Page[models.User], error)
	ApproveUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	RejectUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetStats(ctx context.Context) (*models.AdminStats, error)
}
