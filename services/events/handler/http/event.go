package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/alumnet/backend/internal/pkg/middleware"
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/internal/pkg/validation"
	"github.com/alumnet/backend/internal/utils"
	"github.com/alumnet/backend/services/events"
)

// EventHandler handles HTTP requests for events
type EventHandler struct {
	eventUC events.EventUC
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventUC events.EventUC) *EventHandler {
	return &EventHandler{eventUC: eventUC}
}

// CreateEvent creates an event (admin)
func (h *EventHandler) CreateEvent(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	event, err := h.eventUC.CreateEvent(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Event created", event)
}

// UpdateEvent updates an event (admin)
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid event id")
	}

	var req models.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	event, err := h.eventUC.UpdateEvent(c.Request().Context(), id, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Event updated", event)
}

// DeleteEvent deletes an event (admin)
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid event id")
	}

	if err := h.eventUC.DeleteEvent(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Event deleted", nil)
}

// AssignGroups replaces the event's group links (admin)
func (h *EventHandler) AssignGroups(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid event id")
	}

	var req models.AssignGroupsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	event, err := h.eventUC.AssignGroups(c.Request().Context(), id, req.GroupIDs)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Groups assigned", event)
}

// ListEvents lists the events visible to the caller
func (h *EventHandler) ListEvents(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var p models.Pagination
	if err := c.Bind(&p); err != nil {
		return utils.BadRequestResponse(c, "Invalid pagination")
	}

	page, err := h.eventUC.ListEvents(c.Request().Context(), userID, middleware.UserRole(c), p)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Events retrieved", page)
}

// GetEvent returns a single event
func (h *EventHandler) GetEvent(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid event id")
	}

	event, err := h.eventUC.GetEvent(c.Request().Context(), userID, middleware.UserRole(c), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Event retrieved", event)
}
