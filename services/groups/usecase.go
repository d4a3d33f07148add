package groups

import (
	"context"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/models"
)

// GroupUC defines the group and membership usecase
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/alumnet/backend/services/groups GroupUC
type GroupUC interface {
	CreateGroup(ctx context.Context, req *models.CreateGroupRequest) (*models.Group, error)
	UpdateGroup(ctx context.Context, id uuid.UUID, req *models.CreateGroupRequest) (*models.Group, error)
	DeleteGroup(ctx context.Context, id uuid.UUID) error
	ListGroups(ctx context.Context, p models.Pagination) (*models.Page[models.Group], error)
	GetGroup(ctx context.Context, viewerID uuid.UUID, role models.Role, id uuid.UUID) (*models.Group, error)
	AddMember(ctx context.Context, groupID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error
	MyGroups(ctx context.Context, userID uuid.UUID) ([]models.Group, error)
}
