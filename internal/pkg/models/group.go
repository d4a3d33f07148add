package models

import (
	"time"

	"github.com/google/uuid"
)

// Group is a named membership set used as a visibility scope
type Group struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	MemberCount int    `json:"member_count,omitempty" db:"member_count"`
	Members     []User `json:"members,omitempty" db:"-"`
}

// GroupMembership is the join between users and groups.
// Exactly one row per (user_id, group_id).
type GroupMembership struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	GroupID   uuid.UUID `json:"group_id" db:"group_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateGroupRequest is the payload for creating or updating a group
type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}
