package posts

import (
	"context"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/models"
)

// PostRepo defines the post data access layer
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/alumnet/backend/services/posts PostRepo
type PostRepo interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, viewerID, id uuid.UUID) (*models.Post, error)
	ListFeed(ctx context.Context, viewerID uuid.UUID, admin bool, p models.Pagination) ([]models.Post, int64, error)
	ListByStatus(ctx context.Context, status models.PostStatus, p models.Pagination) ([]models.Post, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.PostStatus) error
	DeletePost(ctx context.Context, id uuid.UUID) ([]models.Media, error)

	AddMedia(ctx context.Context, postID uuid.UUID, media *models.Media) error

	Like(ctx context.Context, postID, userID uuid.UUID) error
	Unlike(ctx context.Context, postID, userID uuid.UUID) error

	CreateComment(ctx context.Context, comment *models.Comment) error
	GetComment(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	ListComments(ctx context.Context, postID uuid.UUID, p models.Pagination) ([]models.Comment, int64, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error

	GetUserGroupIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
