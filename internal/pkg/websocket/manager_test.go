package websocket

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/alumnet/backend/internal/pkg/models"
)

func testManager() *Manager {
	return NewManager(models.JWTConfig{Secret: "test-secret"})
}

func TestAddRemoveClient(t *testing.T) {
	// Arrange
	m := testManager()
	groupID := uuid.New()
	client := &Client{
		UserID:   uuid.New(),
		Role:     models.RoleUser,
		GroupIDs: []uuid.UUID{groupID},
	}

	// Act
	m.AddClient(client)

	// Assert
	got, ok := m.GetClient(client.UserID)
	assert.True(t, ok)
	assert.Equal(t, client, got)
	assert.Equal(t, 1, m.ClientCount())

	// Act
	m.RemoveClient(client.UserID)

	// Assert
	_, ok = m.GetClient(client.UserID)
	assert.False(t, ok)
	assert.Equal(t, 0, m.ClientCount())
	assert.Empty(t, m.rooms, "empty rooms must be cleaned up")
}

func TestRemoveClient_Unknown(t *testing.T) {
	m := testManager()
	// Removing an unknown client must not panic
	m.RemoveClient(uuid.New())
	assert.Equal(t, 0, m.ClientCount())
}

func TestPushToGroups_DeduplicatesAcrossRooms(t *testing.T) {
	// A member of both targeted groups gets registered in both rooms
	m := testManager()
	groupA := uuid.New()
	groupB := uuid.New()

	client := &Client{
		UserID:   uuid.New(),
		Role:     models.RoleUser,
		GroupIDs: []uuid.UUID{groupA, groupB},
		// Conn is nil: WriteMessage is a no-op, we only exercise routing
	}
	m.AddClient(client)

	assert.Len(t, m.rooms, 2)
	m.PushToGroups([]uuid.UUID{groupA, groupB}, models.NotifEventAssigned, nil)
	m.PushToUser(client.UserID, models.NotifPostApproved, nil)
}
