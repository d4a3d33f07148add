package models

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a community event. Events carry no public flag:
// visibility is entirely group-gated for non-admin users.
type Event struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description,omitempty" db:"description"`
	Venue       string    `json:"venue,omitempty" db:"venue"`
	StartsAt    time.Time `json:"starts_at" db:"starts_at"`
	EndsAt      time.Time `json:"ends_at" db:"ends_at"`
	CreatedBy   uuid.UUID `json:"created_by" db:"created_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	GroupIDs []uuid.UUID `json:"group_ids,omitempty" db:"-"`
}

// CreateEventRequest is the payload for creating or updating an event
type CreateEventRequest struct {
	Title       string      `json:"title" validate:"required,max=200"`
	Description string      `json:"description" validate:"omitempty,max=5000"`
	Venue       string      `json:"venue" validate:"omitempty,max=300"`
	StartsAt    time.Time   `json:"startsAt" validate:"required"`
	EndsAt      time.Time   `json:"endsAt" validate:"required"`
	GroupIDs    []uuid.UUID `json:"groupIds"`
}

// AssignGroupsRequest replaces the group links of a resource
type AssignGroupsRequest struct {
	GroupIDs []uuid.UUID `json:"groupIds" validate:"required"`
}
