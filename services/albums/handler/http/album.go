package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/alumnet/backend/internal/pkg/middleware"
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/internal/pkg/validation"
	"github.com/alumnet/backend/internal/utils"
	"github.com/alumnet/backend/services/albums"
)

// AlbumHandler handles HTTP requests for photo albums
type AlbumHandler struct {
	albumUC albums.AlbumUC
}

// NewAlbumHandler creates a new album handler
func NewAlbumHandler(albumUC albums.AlbumUC) *AlbumHandler {
	return &AlbumHandler{albumUC: albumUC}
}

// CreateAlbum creates an album (admin)
func (h *AlbumHandler) CreateAlbum(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateAlbumRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	album, err := h.albumUC.CreateAlbum(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Album created", album)
}

// UpdateAlbum updates an album (admin)
func (h *AlbumHandler) UpdateAlbum(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid album id")
	}

	var req models.CreateAlbumRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	album, err := h.albumUC.UpdateAlbum(c.Request().Context(), id, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Album updated", album)
}

// DeleteAlbum deletes an album and its media (admin)
func (h *AlbumHandler) DeleteAlbum(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid album id")
	}

	if err := h.albumUC.DeleteAlbum(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Album deleted", nil)
}

// AssignGroups replaces the album's group links (admin)
func (h *AlbumHandler) AssignGroups(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid album id")
	}

	var req models.AssignGroupsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	album, err := h.albumUC.AssignGroups(c.Request().Context(), id, req.GroupIDs)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Groups assigned", album)
}

// ListAlbums lists the albums visible to the caller
func (h *AlbumHandler) ListAlbums(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var p models.Pagination
	if err := c.Bind(&p); err != nil {
		return utils.BadRequestResponse(c, "Invalid pagination")
	}

	page, err := h.albumUC.ListAlbums(c.Request().Context(), userID, middleware.UserRole(c), p)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Albums retrieved", page)
}

// GetAlbum returns a single album with its media
func (h *AlbumHandler) GetAlbum(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid album id")
	}

	album, err := h.albumUC.GetAlbum(c.Request().Context(), userID, middleware.UserRole(c), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Album retrieved", album)
}

// UploadMedia adds a photo to an album (admin)
func (h *AlbumHandler) UploadMedia(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid album id")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequestResponse(c, "Missing file")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Unreadable file")
	}
	defer file.Close()

	media, err := h.albumUC.AddMedia(c.Request().Context(), id, fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Media uploaded", media)
}

// DeleteMedia removes a photo from an album (admin)
func (h *AlbumHandler) DeleteMedia(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid album id")
	}
	mediaID, err := uuid.Parse(c.Param("mediaId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid media id")
	}

	if err := h.albumUC.DeleteMedia(c.Request().Context(), id, mediaID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Media deleted", nil)
}
