package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/alumnet/backend/internal/pkg/models"
)

// AuthRepo implements the auth repository interface
type AuthRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB) *AuthRepo {
	return &AuthRepo{
		cfg: cfg,
		db:  db,
	}
}
