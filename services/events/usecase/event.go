package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/access"
	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/logger"
	"github.com/alumnet/backend/internal/pkg/models"
)

// CreateEvent creates an event with its initial group links. Assigned
// groups are notified immediately.
func (u *EventUC) CreateEvent(ctx context.Context, creatorID uuid.UUID, req *models.CreateEventRequest) (*models.Event, error) {
	if !req.EndsAt.After(req.StartsAt) {
		return nil, fmt.Errorf("%w: event must end after it starts", apperrors.ErrValidation)
	}

	now := time.Now()
	event := &models.Event{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		CreatedBy:   creatorID,
		GroupIDs:    req.GroupIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.eventRepo.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	u.notifyGroups(event)
	return event, nil
}

// UpdateEvent updates the event fields; group links are managed
// separately through AssignGroups.
func (u *EventUC) UpdateEvent(ctx context.Context, id uuid.UUID, req *models.CreateEventRequest) (*models.Event, error) {
	if !req.EndsAt.After(req.StartsAt) {
		return nil, fmt.Errorf("%w: event must end after it starts", apperrors.ErrValidation)
	}

	event, err := u.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Title = req.Title
	event.Description = req.Description
	event.Venue = req.Venue
	event.StartsAt = req.StartsAt
	event.EndsAt = req.EndsAt
	event.UpdatedAt = time.Now()

	if err := u.eventRepo.UpdateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

// DeleteEvent removes an event and its group links
func (u *EventUC) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if _, err := u.eventRepo.GetEventByID(ctx, id); err != nil {
		return err
	}

	if err := u.eventRepo.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	logger.Info("Event deleted", logger.String("event_id", id.String()))
	return nil
}

// AssignGroups replaces the event's group links and notifies the new
// audience.
func (u *EventUC) AssignGroups(ctx context.Context, id uuid.UUID, groupIDs []uuid.UUID) (*models.Event, error) {
	event, err := u.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.eventRepo.ReplaceGroups(ctx, id, groupIDs); err != nil {
		return nil, fmt.Errorf("failed to assign groups: %w", err)
	}
	event.GroupIDs = groupIDs

	u.notifyGroups(event)
	return event, nil
}

func (u *EventUC) notifyGroups(event *models.Event) {
	if err := u.notifier.NotifyGroups(models.NotifEventAssigned, event.GroupIDs, event); err != nil {
		logger.Warn("Failed to publish event notification",
			logger.String("event_id", event.ID.String()),
			logger.Err(err))
	}
}

// ListEvents returns the events visible to the viewer. Admins see all;
// everyone else sees events linked to at least one of their groups. A
// viewer with no memberships gets an empty page, not an error.
func (u *EventUC) ListEvents(ctx context.Context, viewerID uuid.UUID, role models.Role, p models.Pagination) (*models.Page[models.Event], error) {
	p.Normalize()

	var (
		items []models.Event
		total int64
		err   error
	)

	if role.IsAdmin() {
		items, total, err = u.eventRepo.ListAll(ctx, p)
	} else {
		groupIDs, gerr := u.eventRepo.GetUserGroupIDs(ctx, viewerID)
		if gerr != nil {
			return nil, fmt.Errorf("failed to load memberships: %w", gerr)
		}
		if len(groupIDs) == 0 {
			return models.EmptyPage[models.Event](p), nil
		}
		items, total, err = u.eventRepo.ListForGroups(ctx, groupIDs, p)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return &models.Page[models.Event]{
		Items: items,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	}, nil
}

// GetEvent returns a single event. Invisible events read as not found
// so their existence does not leak.
func (u *EventUC) GetEvent(ctx context.Context, viewerID uuid.UUID, role models.Role, id uuid.UUID) (*models.Event, error) {
	event, err := u.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	viewer := access.Viewer{UserID: viewerID, Role: role}
	if !role.IsAdmin() {
		viewer.GroupIDs, err = u.eventRepo.GetUserGroupIDs(ctx, viewerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load memberships: %w", err)
		}
	}
	if !access.CanViewGrouped(viewer, event.GroupIDs) {
		return nil, apperrors.ErrNotFound
	}

	return event, nil
}
