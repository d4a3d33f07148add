package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/alumnet/backend/internal/pkg/models"
)

// AlbumRepo implements the album repository interface
type AlbumRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAlbumRepo creates a new album repository instance
func NewAlbumRepo(cfg *models.Config, db *sqlx.DB) *AlbumRepo {
	return &AlbumRepo{
		cfg: cfg,
		db:  db,
	}
}
