package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/access"
	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/logger"
	"github.com/alumnet/backend/internal/pkg/models"
)

// CreatePost creates a post. Visibility defaults: a post without group
// targets is public, a post with group targets is group-scoped unless
// the caller asks for public explicitly. Admin posts skip moderation.
func (u *PostUC) CreatePost(ctx context.Context, authorID uuid.UUID, role models.Role, req *models.CreatePostRequest) (*models.Post, error) {
	isPublic := len(req.GroupIDs) == 0
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	// Non-admins may only target groups they belong to.
	if len(req.GroupIDs) > 0 && !role.IsAdmin() {
		member, err := u.postRepo.GetUserGroupIDs(ctx, authorID)
		if err != nil {
			return nil, fmt.Errorf("failed to load memberships: %w", err)
		}
		memberSet := make(map[uuid.UUID]struct{}, len(member))
		for _, id := range member {
			memberSet[id] = struct{}{}
		}
		for _, id := range req.GroupIDs {
			if _, ok := memberSet[id]; !ok {
				return nil, fmt.Errorf("%w: not a member of group %s", apperrors.ErrForbidden, id)
			}
		}
	}

	status := models.PostPending
	if role.IsAdmin() {
		status = models.PostApproved
	}

	now := time.Now()
	post := &models.Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Content:   req.Content,
		IsPublic:  isPublic,
		Status:    status,
		GroupIDs:  req.GroupIDs,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.postRepo.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// GetFeed returns the visible slice of the feed for the viewer
func (u *PostUC) GetFeed(ctx context.Context, viewerID uuid.UUID, role models.Role, p models.Pagination) (*models.Page[models.Post], error) {
	p.Normalize()

	items, total, err := u.postRepo.ListFeed(ctx, viewerID, role.IsAdmin(), p)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed: %w", err)
	}

	return &models.Page[models.Post]{
		Items: items,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	}, nil
}

// GetPost returns a single post, applying the visibility predicate.
// Invisible posts read as not found.
func (u *PostUC) GetPost(ctx context.Context, viewerID uuid.UUID, role models.Role, postID uuid.UUID) (*models.Post, error) {
	return u.visiblePost(ctx, viewerID, role, postID)
}

func (u *PostUC) visiblePost(ctx context.Context, viewerID uuid.UUID, role models.Role, postID uuid.UUID) (*models.Post, error) {
	post, err := u.postRepo.GetPostByID(ctx, viewerID, postID)
	if err != nil {
		return nil, err
	}

	viewer := access.Viewer{UserID: viewerID, Role: role}
	if !role.IsAdmin() && post.AuthorID != viewerID {
		viewer.GroupIDs, err = u.postRepo.GetUserGroupIDs(ctx, viewerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load memberships: %w", err)
		}
	}
	if !access.CanViewPost(viewer, post) {
		return nil, apperrors.ErrNotFound
	}

	return post, nil
}

// DeletePost removes a post and its media objects. Owner or admin only.
func (u *PostUC) DeletePost(ctx context.Context, viewerID uuid.UUID, role models.Role, postID uuid.UUID) error {
	post, err := u.postRepo.GetPostByID(ctx, viewerID, postID)
	if err != nil {
		return err
	}
	if !access.CanModify(access.Viewer{UserID: viewerID, Role: role}, post.AuthorID) {
		return apperrors.ErrForbidden
	}

	media, err := u.postRepo.DeletePost(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	// Rows are gone; object deletion is best effort.
	for _, m := range media {
		if err := u.media.Delete(ctx, m.ObjectName); err != nil {
			logger.Warn("Failed to delete media object",
				logger.String("object", m.ObjectName),
				logger.Err(err))
		}
	}

	return nil
}

// ApprovePost marks a post approved and notifies the author
func (u *PostUC) ApprovePost(ctx context.Context, postID uuid.UUID) (*models.Post, error) {
	return u.moderate(ctx, postID, models.PostApproved, models.NotifPostApproved)
}

// RejectPost marks a post rejected and notifies the author
func (u *PostUC) RejectPost(ctx context.Context, postID uuid.UUID) (*models.Post, error) {
	return u.moderate(ctx, postID, models.PostRejected, models.NotifPostRejected)
}

func (u *PostUC) moderate(ctx context.Context, postID uuid.UUID, status models.PostStatus, event string) (*models.Post, error) {
	post, err := u.postRepo.GetPostByID(ctx, uuid.Nil, postID)
	if err != nil {
		return nil, err
	}

	if post.Status != status {
		if err := u.postRepo.UpdateStatus(ctx, postID, status); err != nil {
			return nil, fmt.Errorf("failed to update post status: %w", err)
		}
		post.Status = status

		if err := u.notifier.NotifyUser(event, post.AuthorID, post); err != nil {
			logger.Warn("Failed to publish moderation notification",
				logger.String("post_id", postID.String()),
				logger.Err(err))
		}
	}

	return post, nil
}

// ListByStatus lists posts in a moderation state for the admin view
func (u *PostUC) ListByStatus(ctx context.Context, status string, p models.Pagination) (*models.Page[models.Post], error) {
	p.Normalize()

	s := models.PostStatus(status)
	switch s {
	case models.PostPending, models.PostApproved, models.PostRejected:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, status)
	}

	items, total, err := u.postRepo.ListByStatus(ctx, s, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return &models.Page[models.Post]{
		Items: items,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	}, nil
}

// LikePost records a like. Liking twice is a no-op, and liking an
// invisible post reads as not found.
func (u *PostUC) LikePost(ctx context.Context, viewerID uuid.UUID, role models.Role, postID uuid.UUID) error {
	post, err := u.visiblePost(ctx, viewerID, role, postID)
	if err != nil {
		return err
	}

	if err := u.postRepo.Like(ctx, postID, viewerID); err != nil {
		return fmt.Errorf("failed to like post: %w", err)
	}

	if post.AuthorID != viewerID {
		if err := u.notifier.NotifyUser(models.NotifPostLiked, post.AuthorID, map[string]string{
			"post_id": postID.String(),
			"user_id": viewerID.String(),
		}); err != nil {
			logger.Warn("Failed to publish like notification", logger.Err(err))
		}
	}

	return nil
}

// UnlikePost removes a like. Removing an absent like is a no-op.
func (u *PostUC) UnlikePost(ctx context.Context, viewerID uuid.UUID, postID uuid.UUID) error {
	if err := u.postRepo.Unlike(ctx, postID, viewerID); err != nil {
		return fmt.Errorf("failed to unlike post: %w", err)
	}
	return nil
}

// AddComment adds a comment to a visible post and notifies the author
func (u *PostUC) AddComment(ctx context.Context, viewerID uuid.UUID, role models.Role, postID uuid.UUID, req *models.CreateCommentRequest) (*models.Comment, error) {
	post, err := u.visiblePost(ctx, viewerID, role, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		AuthorID:  viewerID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := u.postRepo.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if post.AuthorID != viewerID {
		if err := u.notifier.NotifyUser(models.NotifPostCommented, post.AuthorID, comment); err != nil {
			logger.Warn("Failed to publish comment notification", logger.Err(err))
		}
	}

	return comment, nil
}

// ListComments lists a visible post's comments, oldest first
func (u *PostUC) ListComments(ctx context.Context, viewerID uuid.UUID, role models.Role, postID uuid.UUID, p models.Pagination) (*models.Page[models.Comment], error) {
	if _, err := u.visiblePost(ctx, viewerID, role, postID); err != nil {
		return nil, err
	}

	p.Normalize()
	items, total, err := u.postRepo.ListComments(ctx, postID, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return &models.Page[models.Comment]{
		Items: items,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	}, nil
}

// DeleteComment removes a comment. The comment author, the post author
// and admins may delete.
func (u *PostUC) DeleteComment(ctx context.Context, viewerID uuid.UUID, role models.Role, postID, commentID uuid.UUID) error {
	post, err := u.postRepo.GetPostByID(ctx, viewerID, postID)
	if err != nil {
		return err
	}

	comment, err := u.postRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.PostID != postID {
		return apperrors.ErrNotFound
	}

	if !role.IsAdmin() && viewerID != comment.AuthorID && viewerID != post.AuthorID {
		return apperrors.ErrForbidden
	}

	if err := u.postRepo.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// UploadMedia attaches a media object to the caller's own post
func (u *PostUC) UploadMedia(ctx context.Context, viewerID uuid.UUID, postID uuid.UUID, fileName string, file io.Reader, size int64) (*models.Media, error) {
	post, err := u.postRepo.GetPostByID(ctx, viewerID, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != viewerID {
		return nil, apperrors.ErrForbidden
	}

	objectName, url, err := u.media.Upload(ctx, "posts", fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	media := &models.Media{
		ID:         uuid.New(),
		ObjectName: objectName,
		URL:        url,
		CreatedAt:  time.Now(),
	}
	if err := u.postRepo.AddMedia(ctx, postID, media); err != nil {
		// Orphaned object; reap it right away.
		if derr := u.media.Delete(ctx, objectName); derr != nil {
			logger.Warn("Failed to delete orphaned media object",
				logger.String("object", objectName),
				logger.Err(derr))
		}
		return nil, fmt.Errorf("failed to record media: %w", err)
	}

	return media, nil
}
