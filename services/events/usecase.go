package events

import (
	"context"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/models"
)

// EventUC defines the event usecase
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/alumnet/backend/services/events EventUC
type EventUC interface {
	CreateEvent(ctx context.Context, creatorID uuid.UUID, req *models.CreateEventRequest) (*models.Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req *models.CreateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	AssignGroups(ctx context.Context, id uuid.UUID, groupIDs []uuid.UUID) (*models.Event, error)
	ListEvents(ctx context.Context, viewerID uuid.UUID, role models.Role, p models.Pagination) (*models.Page[models.Event], error)
	GetEvent(ctx context.Context, viewerID uuid.UUID, role models.Role, id uuid.UUID) (*models.Event, error)
}
