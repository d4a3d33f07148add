package models

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus is the moderation state of a post.
type PostStatus string

const (
	PostPending  PostStatus = "pending"
	PostApproved PostStatus = "approved"
	PostRejected PostStatus = "rejected"
)

// Post represents a feed post
type Post struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	AuthorID  uuid.UUID  `json:"author_id" db:"author_id"`
	Content   string     `json:"content" db:"content"`
	IsPublic  bool       `json:"is_public" db:"is_public"`
	Status    PostStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`

	// Populated on reads, not stored on the posts row.
	AuthorName   string      `json:"author_name,omitempty" db:"author_name"`
	GroupIDs     []uuid.UUID `json:"group_ids,omitempty" db:"-"`
	Media        []Media     `json:"media,omitempty" db:"-"`
	LikeCount    int         `json:"like_count" db:"-"`
	CommentCount int         `json:"comment_count" db:"-"`
	LikedByMe    bool        `json:"liked_by_me" db:"-"`
}

// Media is a stored object reference for a post or album
type Media struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ObjectName string    `json:"-" db:"object_name"`
	URL        string    `json:"url" db:"url"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Comment is a comment on a post
type Comment struct {
	ID         uuid.UUID `json:"id" db:"id"`
	PostID     uuid.UUID `json:"post_id" db:"post_id"`
	AuthorID   uuid.UUID `json:"author_id" db:"author_id"`
	AuthorName string    `json:"author_name,omitempty" db:"author_name"`
	Content    string    `json:"content" db:"content"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CreatePostRequest is the payload for creating a post
type CreatePostRequest struct {
	Content  string      `json:"content" validate:"required,max=5000"`
	GroupIDs []uuid.UUID `json:"groupIds"`
	IsPublic *bool       `json:"isPublic"`
}

// CreateCommentRequest is the payload for commenting on a post
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}
