package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/alumnet/backend/internal/pkg/models"
)

// PostRepo implements the post repository interface
type PostRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPostRepo creates a new post repository instance
func NewPostRepo(cfg *models.Config, db *sqlx.DB) *PostRepo {
	return &PostRepo{
		cfg: cfg,
		db:  db,
	}
}
