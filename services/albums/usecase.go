package albums

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/models"
)

// AlbumUC defines the photo album usecase
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/alumnet/backend/services/albums AlbumUC
type AlbumUC interface {
	CreateAlbum(ctx context.Context, creatorID uuid.UUID, req *models.CreateAlbumRequest) (*models.Album, error)
	UpdateAlbum(ctx context.Context, id uuid.UUID, req *models.CreateAlbumRequest) (*models.Album, error)
	DeleteAlbum(ctx context.Context, id uuid.UUID) error
	AssignGroups(ctx context.Context, id uuid.UUID, groupIDs []uuid.UUID) (*models.Album, error)
	ListAlbums(ctx context.Context, viewerID uuid.UUID, role models.Role, p models.Pagination) (*models.Page[models.Album], error)
	GetAlbum(ctx context.Context, viewerID uuid.UUID, role models.Role, id uuid.UUID) (*models.Album, error)
	AddMedia(ctx context.Context, albumID uuid.UUID, fileName string, file io.Reader, size int64) (*models.Media, error)
	DeleteMedia(ctx context.Context, albumID, mediaID uuid.UUID) error
}
