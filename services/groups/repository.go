package groups

import (
	"context"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/models"
)

// GroupRepo defines the group data access layer
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/alumnet/backend/services/groups GroupRepo
type GroupRepo interface {
	CreateGroup(ctx context.Context, group *models.Group) error
	UpdateGroup(ctx context.Context, group *models.Group) error
	DeleteGroup(ctx context.Context, id uuid.UUID) error
	GetGroupByID(ctx context.Context, id uuid.UUID) (*models.Group, error)
	ListGroups(ctx context.Context, p models.Pagination) ([]models.Group, int64, error)
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]models.User, error)
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
	AddMember(ctx context.Context, groupID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error
	ListUserGroups(ctx context.Context, userID uuid.UUID) ([]models.Group, error)
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
}
