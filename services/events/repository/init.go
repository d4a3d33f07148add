package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/alumnet/backend/internal/pkg/models"
)

// EventRepo implements the event repository interface
type EventRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewEventRepo creates a new event repository instance
func NewEventRepo(cfg *models.Config, db *sqlx.DB) *EventRepo {
	return &EventRepo{
		cfg: cfg,
		db:  db,
	}
}
