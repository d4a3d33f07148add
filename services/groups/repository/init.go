package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/alumnet/backend/internal/pkg/models"
)

// GroupRepo implements the group repository interface
type GroupRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewGroupRepo creates a new group repository instance
func NewGroupRepo(cfg *models.Config, db *sqlx.DB) *GroupRepo {
	return &GroupRepo{
		cfg: cfg,
		db:  db,
	}
}
