package events

import (
	"context"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/models"
)

// EventRepo defines the event data access layer
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/alumnet/backend/services/events EventRepo
type EventRepo interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	UpdateEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	GetEventByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	ReplaceGroups(ctx context.Context, id uuid.UUID, groupIDs []uuid.UUID) error
	ListAll(ctx context.Context, p models.Pagination) ([]models.Event, int64, error)
	ListForGroups(ctx context.Context, groupIDs []uuid.UUID, p models.Pagination) ([]models.Event, int64, error)
	GetUserGroupIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
