package albums

import (
	"context"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/models"
)

// AlbumRepo defines the album data access layer
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/alumnet/backend/services/albums AlbumRepo
type AlbumRepo interface {
	CreateAlbum(ctx context.Context, album *models.Album) error
	UpdateAlbum(ctx context.Context, album *models.Album) error
	DeleteAlbum(ctx context.Context, id uuid.UUID) ([]models.Media, error)
	GetAlbumByID(ctx context.Context, id uuid.UUID) (*models.Album, error)
	ReplaceGroups(ctx context.Context, id uuid.UUID, groupIDs []uuid.UUID) error
	ListAll(ctx context.Context, p models.Pagination) ([]models.Album, int64, error)
	ListForGroups(ctx context.Context, groupIDs []uuid.UUID, p models.Pagination) ([]models.Album, int64, error)
	AddMedia(ctx context.Context, albumID uuid.UUID, media *models.Media) error
	GetMedia(ctx context.Context, albumID, mediaID uuid.UUID) (*models.Media, error)
	DeleteMedia(ctx context.Context, mediaID uuid.UUID) error
	EventExists(ctx context.Context, eventID uuid.UUID) (bool, error)
	GetUserGroupIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
