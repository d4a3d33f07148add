package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/alumnet/backend/internal/pkg/middleware"
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/internal/pkg/validation"
	"github.com/alumnet/backend/internal/utils"
	"github.com/alumnet/backend/services/users"
)

// UserHandler handles HTTP requests for user profiles and
// account administration
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// Me returns the authenticated user's own profile
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID, middleware.UserRole(c), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Profile retrieved", user)
}

// GetUser returns another user's profile, subject to visibility rules
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID, middleware.UserRole(c), targetID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Profile retrieved", user)
}

// UpdateMe updates the authenticated user's profile
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Profile updated", user)
}

// UploadAvatar stores a new avatar image for the authenticated user
func (h *UserHandler) UploadAvatar(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequestResponse(c, "file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Unable to read uploaded file")
	}
	defer src.Close()

	user, err := h.userUC.UploadAvatar(c.Request().Context(), userID, fileHeader.Filename, src, fileHeader.Size)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Avatar updated", user)
}

// ListUsers lists accounts filtered by status (admin)
func (h *UserHandler) ListUsers(c echo.Context) error {
	var p models.Pagination
	if err := c.Bind(&p); err != nil {
		return utils.BadRequestResponse(c, "Invalid pagination")
	}

	page, err := h.userUC.ListUsers(c.Request().Context(), c.QueryParam("status"), p)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Users retrieved", page)
}

// ApproveUser approves a pending account (admin)
func (h *UserHandler) ApproveUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	user, err := h.userUC.ApproveUser(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Account approved", user)
}

// RejectUser rejects an account (admin)
func (h *UserHandler) RejectUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	user, err := h.userUC.RejectUser(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Account rejected", user)
}

// Stats returns the admin dashboard counters (admin)
func (h *UserHandler) Stats(c echo.Context) error {
	stats, err := h.userUC.GetStats(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Stats retrieved", stats)
}
