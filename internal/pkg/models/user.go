package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of roles an identity can hold.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// IsAdmin reports whether the role carries administrative capabilities.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// AccountStatus is the approval state of a user account.
type AccountStatus string

const (
	StatusPending  AccountStatus = "pending"
	StatusApproved AccountStatus = "approved"
	StatusRejected AccountStatus = "rejected"
)

// User represents a member of the community
type User struct {
	ID             uuid.UUID     `json:"id" db:"id"`
	MSISDN         string        `json:"msisdn" db:"msisdn"`
	FullName       string        `json:"full_name" db:"full_name"`
	Email          string        `json:"email,omitempty" db:"email"`
	Bio            string        `json:"bio,omitempty" db:"bio"`
	AvatarURL      string        `json:"avatar_url,omitempty" db:"avatar_url"`
	GraduationYear int           `json:"graduation_year,omitempty" db:"graduation_year"`
	Role           Role          `json:"role" db:"role"`
	Status         AccountStatus `json:"status" db:"status"`
	IsActive       bool          `json:"is_active" db:"is_active"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`
}

// UpdateProfileRequest is the payload for profile updates
type UpdateProfileRequest struct {
	FullName       string `json:"full_name" validate:"omitempty,max=120"`
	Email          string `json:"email" validate:"omitempty,email"`
	Bio            string `json:"bio" validate:"omitempty,max=1000"`
	GraduationYear int    `json:"graduation_year" validate:"omitempty,gte=1900,lte=2100"`
}

// AdminStats aggregates dashboard counters for the admin view
type AdminStats struct {
	TotalUsers    int64 `json:"total_users"`
	PendingUsers  int64 `json:"pending_users"`
	RejectedUsers int64 `json:"rejected_users"`
	TotalPosts    int64 `json:"total_posts"`
	PendingPosts  int64 `json:"pending_posts"`
	TotalEvents   int64 `json:"total_events"`
	TotalAlbums   int64 `json:"total_albums"`
	TotalGroups   int64 `json:"total_groups"`
}
