package posts

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/models"
)

// PostUC defines the post, like and comment usecase
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/alumnet/backend/services/posts PostUC
type PostUC interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, role models.Role, req *models.CreatePostRequest) (*models.Post, error)
	GetFeed(ctx context.Context, viewerID uuid.UUID, role models.Role, p models.Pagination) (*models.Page[models.Post], error)
	GetPost(ctx context.Context, viewerID uuid.UUID, role models.Role, postID uuid.UUID) (*models.Post, error)
	DeletePost(ctx context.Context, viewerID uuid.UUID, role models.Role, postID uuid.UUID) error

	ApprovePost(ctx context.Context, postID uuid.UUID) (*models.Post, error)
	RejectPost(ctx context.Context, postID uuid.UUID) (*models.Post, error)
	ListByStatus(ctx context.Context, status string, p models.Pagination) (*models.Page[models.Post], error)

	LikePost(ctx context.Context, viewerID uuid.UUID, role models.Role, postID uuid.UUID) error
	UnlikePost(ctx context.Context, viewerID uuid.UUID, postID uuid.UUID) error

	AddComment(ctx context.Context, viewerID uuid.UUID, role models.Role, postID uuid.UUID, req *models.CreateCommentRequest) (*models.Comment, error)
	ListComments(ctx context.Context, viewerID uuid.UUID, role models.Role, postID uuid.UUID, p models.Pagination) (*models.Page[models.Comment], error)
	DeleteComment(ctx context.Context, viewerID uuid.UUID, role models.Role, postID, commentID uuid.UUID) error

	UploadMedia(ctx context.Context, viewerID uuid.UUID, postID uuid.UUID, fileName string, file io.Reader, size int64) (*models.Media, error)
}
