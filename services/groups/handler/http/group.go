package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/alumnet/backend/internal/pkg/middleware"
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/internal/pkg/validation"
	"github.com/alumnet/backend/internal/utils"
	"github.com/alumnet/backend/services/groups"
)

// GroupHandler handles HTTP requests for groups and memberships
type GroupHandler struct {
	groupUC groups.GroupUC
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(groupUC groups.GroupUC) *GroupHandler {
	return &GroupHandler{groupUC: groupUC}
}

// CreateGroup creates a group (admin)
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	var req models.CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	group, err := h.groupUC.CreateGroup(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Group created", group)
}

// UpdateGroup updates a group (admin)
func (h *GroupHandler) UpdateGroup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group id")
	}

	var req models.CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	group, err := h.groupUC.UpdateGroup(c.Request().Context(), id, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Group updated", group)
}

// DeleteGroup deletes a group (admin)
func (h *GroupHandler) DeleteGroup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group id")
	}

	if err := h.groupUC.DeleteGroup(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Group deleted", nil)
}

// ListGroups lists all groups
func (h *GroupHandler) ListGroups(c echo.Context) error {
	var p models.Pagination
	if err := c.Bind(&p); err != nil {
		return utils.BadRequestResponse(c, "Invalid pagination")
	}

	page, err := h.groupUC.ListGroups(c.Request().Context(), p)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Groups retrieved", page)
}

// GetGroup returns a group, with members for admins and group members
func (h *GroupHandler) GetGroup(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group id")
	}

	group, err := h.groupUC.GetGroup(c.Request().Context(), userID, middleware.UserRole(c), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Group retrieved", group)
}

// AddMember adds a user to a group (admin)
func (h *GroupHandler) AddMember(c echo.Context) error {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group id")
	}
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	if err := h.groupUC.AddMember(c.Request().Context(), groupID, userID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Member added", nil)
}

// RemoveMember removes a user from a group (admin)
func (h *GroupHandler) RemoveMember(c echo.Context) error {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group id")
	}
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	if err := h.groupUC.RemoveMember(c.Request().Context(), groupID, userID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Member removed", nil)
}

// MyGroups lists the caller's group memberships
func (h *GroupHandler) MyGroups(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	groups, err := h.groupUC.MyGroups(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Groups retrieved", groups)
}
