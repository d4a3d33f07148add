package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Notification event types carried over NSQ and pushed to websocket clients.
const (
	NotifPostApproved  = "post.approved"
	NotifPostRejected  = "post.rejected"
	NotifPostLiked     = "post.liked"
	NotifPostCommented = "post.commented"
	NotifEventAssigned = "event.assigned"
	NotifAlbumAssigned = "album.assigned"
	NotifUserApproved  = "user.approved"
)

// Notification is the message published to the notifications topic.
// Exactly one of UserID / GroupIDs is set: direct pushes target a user,
// room pushes target every member of the listed groups.
type Notification struct {
	Event     string          `json:"event"`
	UserID    *uuid.UUID      `json:"user_id,omitempty"`
	GroupIDs  []uuid.UUID     `json:"group_ids,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// WSMessage is the frame shape written to websocket clients
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}
