package models

import (
	"time"

	"github.com/google/uuid"
)

// Album represents a photo album, optionally attached to an event.
// Like events, albums are visible to non-admins only through group membership.
type Album struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description,omitempty" db:"description"`
	EventID     *uuid.UUID `json:"event_id,omitempty" db:"event_id"`
	CreatedBy   uuid.UUID  `json:"created_by" db:"created_by"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`

	GroupIDs []uuid.UUID `json:"group_ids,omitempty" db:"-"`
	Media    []Media     `json:"media,omitempty" db:"-"`
}

// CreateAlbumRequest is the payload for creating or updating an album
type CreateAlbumRequest struct {
	Title       string      `json:"title" validate:"required,max=200"`
	Description string      `json:"description" validate:"omitempty,max=5000"`
	EventID     *uuid.UUID  `json:"eventId"`
	GroupIDs    []uuid.UUID `json:"groupIds"`
}
