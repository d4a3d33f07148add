package usecase

import (
	"github.com/alumnet/backend/internal/pkg/notify"
	"github.com/alumnet/backend/internal/pkg/storage"
	"github.com/alumnet/backend/services/albums"
)

// AlbumUC implements the album usecase
type AlbumUC struct {
	albumRepo albums.AlbumRepo
	media     storage.MediaStore
	notifier  notify.Publisher
}

// NewAlbumUC creates a new album usecase instance
func NewAlbumUC(
	albumRepo albums.AlbumRepo,
	media storage.MediaStore,
	notifier notify.Publisher,
) *AlbumUC {
	return &AlbumUC{
		albumRepo: albumRepo,
		media:     media,
		notifier:  notifier,
	}
}
