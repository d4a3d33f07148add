// Package access holds the single visibility rule set shared by every
// list/detail endpoint. Posts, events and albums all route through these
// predicates instead of re-deriving the policy per handler.
package access

import (
	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/models"
)

// Viewer is the authenticated identity evaluating a resource
type Viewer struct {
	UserID   uuid.UUID
	Role     models.Role
	GroupIDs []uuid.UUID
}

// IsAdmin reports whether the viewer bypasses all visibility filters
func (v Viewer) IsAdmin() bool {
	return v.Role.IsAdmin()
}

// CanViewPost decides post visibility:
//   - admins see everything
//   - authors always see their own posts, regardless of status
//   - everyone else sees approved posts that are public or linked to
//     at least one of the viewer's groups
func CanViewPost(v Viewer, post *models.Post) bool {
	if v.IsAdmin() {
		return true
	}
	if post.AuthorID == v.UserID {
		return true
	}
	if post.Status != models.PostApproved {
		return false
	}
	if post.IsPublic {
		return true
	}
	return Intersects(v.GroupIDs, post.GroupIDs)
}

// CanViewGrouped decides event/album visibility. Unlike posts there is
// no public fallback: non-admins see a resource only through group
// intersection. A viewer with zero memberships sees nothing.
func CanViewGrouped(v Viewer, resourceGroupIDs []uuid.UUID) bool {
	if v.IsAdmin() {
		return true
	}
	return Intersects(v.GroupIDs, resourceGroupIDs)
}

// CanModify reports whether the viewer may mutate a resource owned by
// ownerID. Admins and owners may; nobody else.
func CanModify(v Viewer, ownerID uuid.UUID) bool {
	return v.IsAdmin() || v.UserID == ownerID
}

// Intersects reports whether two id sets share at least one element
func Intersects(a, b []uuid.UUID) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[uuid.UUID]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}
