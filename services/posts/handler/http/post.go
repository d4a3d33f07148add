package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/alumnet/backend/internal/pkg/middleware"
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/internal/pkg/validation"
	"github.com/alumnet/backend/internal/utils"
	"github.com/alumnet/backend/services/posts"
)

// PostHandler handles HTTP requests for posts, likes and comments
type PostHandler struct {
	postUC posts.PostUC
}

// NewPostHandler creates a new post handler
func NewPostHandler(postUC posts.PostUC) *PostHandler {
	return &PostHandler{postUC: postUC}
}

// CreatePost creates a new post
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	post, err := h.postUC.CreatePost(c.Request().Context(), userID, middleware.UserRole(c), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Post created", post)
}

// GetFeed returns the paginated feed visible to the caller
func (h *PostHandler) GetFeed(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var p models.Pagination
	if err := c.Bind(&p); err != nil {
		return utils.BadRequestResponse(c, "Invalid pagination")
	}

	page, err := h.postUC.GetFeed(c.Request().Context(), userID, middleware.UserRole(c), p)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Feed retrieved", page)
}

// GetPost returns a single post
func (h *PostHandler) GetPost(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid post id")
	}

	post, err := h.postUC.GetPost(c.Request().Context(), userID, middleware.UserRole(c), postID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Post retrieved", post)
}

// DeletePost deletes a post (owner or admin)
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid post id")
	}

	if err := h.postUC.DeletePost(c.Request().Context(), userID, middleware.UserRole(c), postID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Post deleted", nil)
}

// ApprovePost approves a pending post (admin)
func (h *PostHandler) ApprovePost(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid post id")
	}

	post, err := h.postUC.ApprovePost(c.Request().Context(), postID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Post approved", post)
}

// RejectPost rejects a post (admin)
func (h *PostHandler) RejectPost(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid post id")
	}

	post, err := h.postUC.RejectPost(c.Request().Context(), postID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Post rejected", post)
}

// ListByStatus lists posts by moderation status (admin)
func (h *PostHandler) ListByStatus(c echo.Context) error {
	var p models.Pagination
	if err := c.Bind(&p); err != nil {
		return utils.BadRequestResponse(c, "Invalid pagination")
	}

	status := c.QueryParam("status")
	if status == "" {
		status = string(models.PostPending)
	}

	page, err := h.postUC.ListByStatus(c.Request().Context(), status, p)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Posts retrieved", page)
}

// LikePost likes a post
func (h *PostHandler) LikePost(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid post id")
	}

	if err := h.postUC.LikePost(c.Request().Context(), userID, middleware.UserRole(c), postID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Post liked", nil)
}

// UnlikePost removes a like
func (h *PostHandler) UnlikePost(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid post id")
	}

	if err := h.postUC.UnlikePost(c.Request().Context(), userID, postID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Like removed", nil)
}

// AddComment adds a comment to a post
func (h *PostHandler) AddComment(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid post id")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	comment, err := h.postUC.AddComment(c.Request().Context(), userID, middleware.UserRole(c), postID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Comment added", comment)
}

// ListComments lists a post's comments
func (h *PostHandler) ListComments(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid post id")
	}

	var p models.Pagination
	if err := c.Bind(&p); err != nil {
		return utils.BadRequestResponse(c, "Invalid pagination")
	}

	page, err := h.postUC.ListComments(c.Request().Context(), userID, middleware.UserRole(c), postID, p)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Comments retrieved", page)
}

// DeleteComment deletes a comment (comment author, post author or admin)
func (h *PostHandler) DeleteComment(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid post id")
	}
	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid comment id")
	}

	if err := h.postUC.DeleteComment(c.Request().Context(), userID, middleware.UserRole(c), postID, commentID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Comment deleted", nil)
}

// UploadMedia attaches a media file to the caller's post
func (h *PostHandler) UploadMedia(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid post id")
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

	media, err := h.postUC.UploadMedia(c.Request().Context(), userID, postID, fileHeader.Filename, src, fileHeader.Size)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Media uploaded", media)
}
