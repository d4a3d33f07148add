package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/alumnet/backend/internal/pkg/models"
)

var (
	groupG = uuid.New()
	groupH = uuid.New()
)

func viewer(role models.Role, groups ...uuid.UUID) Viewer {
	return Viewer{UserID: uuid.New(), Role: role, GroupIDs: groups}
}

func TestCanViewPost(t *testing.T) {
	author := uuid.New()

	tests := []struct {
		name     string
		viewer   Viewer
		post     models.Post
		expected bool
	}{
		{
			name:     "admin sees pending post",
			viewer:   viewer(models.RoleAdmin),
			post:     models.Post{AuthorID: author, Status: models.PostPending},
			expected: true,
		},
		{
			name:     "super admin sees rejected private post",
			viewer:   viewer(models.RoleSuperAdmin),
			post:     models.Post{AuthorID: author, Status: models.PostRejected, GroupIDs: []uuid.UUID{groupG}},
			expected: true,
		},
		{
			name:     "public approved post visible to anyone",
			viewer:   viewer(models.RoleUser),
			post:     models.Post{AuthorID: author, Status: models.PostApproved, IsPublic: true},
			expected: true,
		},
		{
			name:     "public pending post hidden",
			viewer:   viewer(models.RoleUser),
			post:     models.Post{AuthorID: author, Status: models.PostPending, IsPublic: true},
			expected: false,
		},
		{
			name:     "group post visible to member",
			viewer:   viewer(models.RoleUser, groupG),
			post:     models.Post{AuthorID: author, Status: models.PostApproved, GroupIDs: []uuid.UUID{groupG}},
			expected: true,
		},
		{
			name:     "group post hidden from non-member",
			viewer:   viewer(models.RoleUser, groupH),
			post:     models.Post{AuthorID: author, Status: models.PostApproved, GroupIDs: []uuid.UUID{groupG}},
			expected: false,
		},
		{
			name:     "group post hidden from user with no groups",
			viewer:   viewer(models.RoleUser),
			post:     models.Post{AuthorID: author, Status: models.PostApproved, GroupIDs: []uuid.UUID{groupG}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanViewPost(tt.viewer, &tt.post))
		})
	}
}

func TestCanViewPost_OwnershipOverride(t *testing.T) {
	// An author always sees their own post, even pending or rejected
	v := viewer(models.RoleUser)
	post := models.Post{AuthorID: v.UserID, Status: models.PostPending}
	assert.True(t, CanViewPost(v, &post))

	post.Status = models.PostRejected
	assert.True(t, CanViewPost(v, &post))
}

func TestCanViewGrouped(t *testing.T) {
	tests := []struct {
		name           string
		viewer         Viewer
		resourceGroups []uuid.UUID
		expected       bool
	}{
		{
			name:           "admin bypasses group gate",
			viewer:         viewer(models.RoleAdmin),
			resourceGroups: nil,
			expected:       true,
		},
		{
			name:           "member sees group resource",
			viewer:         viewer(models.RoleUser, groupG),
			resourceGroups: []uuid.UUID{groupG, groupH},
			expected:       true,
		},
		{
			name:           "non-member blocked",
			viewer:         viewer(models.RoleUser, groupH),
			resourceGroups: []uuid.UUID{groupG},
			expected:       false,
		},
		{
			// No public fallback on events/albums: unlinked resources are
			// invisible to every non-admin
			name:           "resource with no groups invisible to non-admin",
			viewer:         viewer(models.RoleUser, groupG),
			resourceGroups: nil,
			expected:       false,
		},
		{
			name:           "viewer with no groups sees nothing",
			viewer:         viewer(models.RoleUser),
			resourceGroups: []uuid.UUID{groupG},
			expected:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanViewGrouped(tt.viewer, tt.resourceGroups))
		})
	}
}

func TestCanModify(t *testing.T) {
	owner := uuid.New()

	v := Viewer{UserID: owner, Role: models.RoleUser}
	assert.True(t, CanModify(v, owner))

	other := viewer(models.RoleUser)
	assert.False(t, CanModify(other, owner))

	admin := viewer(models.RoleAdmin)
	assert.True(t, CanModify(admin, owner))
}

func TestIntersects(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	assert.True(t, Intersects([]uuid.UUID{a, b}, []uuid.UUID{b}))
	assert.False(t, Intersects([]uuid.UUID{a}, []uuid.UUID{b}))
	assert.False(t, Intersects(nil, []uuid.UUID{a}))
	assert.False(t, Intersects([]uuid.UUID{a}, nil))
}
