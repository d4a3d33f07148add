package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/alumnet/backend/internal/pkg/jwt"
	"github.com/alumnet/backend/internal/pkg/logger"
	"github.com/alumnet/backend/internal/pkg/models"
)

// Client is one authenticated websocket connection
type Client struct {
	UserID   uuid.UUID
	Role     models.Role
	GroupIDs []uuid.UUID
	Conn     *websocket.Conn

	writeMu sync.Mutex
}

// WriteMessage writes one frame; safe for concurrent callers
func (cl *Client) WriteMessage(msg models.WSMessage) error {
	if cl.Conn == nil {
		return nil // nil connections show up in tests only
	}
	cl.writeMu.Lock()
	defer cl.writeMu.Unlock()
	return cl.Conn.WriteJSON(msg)
}

// Manager manages websocket connections: a registry keyed by user id
// plus room membership derived from the user's groups at connect time.
type Manager struct {
	sync.RWMutex
	clients map[uuid.UUID]*Client
	rooms   map[uuid.UUID]map[uuid.UUID]*Client // group id -> user id -> client
	cfg     models.JWTConfig

	upgrader websocket.Upgrader
}

// NewManager creates a new websocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[uuid.UUID]*Client),
		rooms:   make(map[uuid.UUID]map[uuid.UUID]*Client),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Authenticate validates the bearer token on a websocket handshake
func (m *Manager) Authenticate(c echo.Context) (*jwtpkg.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	token := ""
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		token = parts[1]
	} else {
		// Browsers cannot set headers on websocket requests
		token = c.QueryParam("token")
	}

	if token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization is required")
	}

	claims, err := jwtpkg.ValidateToken(token, jwtpkg.TokenTypeAccess, m.cfg)
	if err != nil {
		logger.Warn("Websocket token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return claims, nil
}

// Upgrade upgrades the HTTP request to a websocket connection
func (m *Manager) Upgrade(c echo.Context) (*websocket.Conn, error) {
	return m.upgrader.Upgrade(c.Response(), c.Request(), nil)
}

// AddClient registers a client under its user id and group rooms
func (m *Manager) AddClient(client *Client) {
	m.Lock()
	defer m.Unlock()

	m.clients[client.UserID] = client
	for _, gid := range client.GroupIDs {
		room, ok := m.rooms[gid]
		if !ok {
			room = make(map[uuid.UUID]*Client)
			m.rooms[gid] = room
		}
		room[client.UserID] = client
	}
}

// RemoveClient removes a client from the registry and all rooms
func (m *Manager) RemoveClient(userID uuid.UUID) {
	m.Lock()
	defer m.Unlock()

	client, ok := m.clients[userID]
	if !ok {
		return
	}
	delete(m.clients, userID)

	for _, gid := range client.GroupIDs {
		if room, ok := m.rooms[gid]; ok {
			delete(room, userID)
			if len(room) == 0 {
				delete(m.rooms, gid)
			}
		}
	}
}

// GetClient returns a client by user id
func (m *Manager) GetClient(userID uuid.UUID) (*Client, bool) {
	m.RLock()
	defer m.RUnlock()
	client, ok := m.clients[userID]
	return client, ok
}

// PushToUser sends an event to one user's connection, if present
func (m *Manager) PushToUser(userID uuid.UUID, event string, data json.RawMessage) {
	m.RLock()
	client, ok := m.clients[userID]
	m.RUnlock()
	if !ok {
		return
	}

	if err := client.WriteMessage(models.WSMessage{Event: event, Data: data}); err != nil {
		logger.Warn("Websocket push failed",
			logger.String("user_id", userID.String()),
			logger.Err(err))
	}
}

// PushToGroups sends an event to every member of the given group rooms.
// Each connected user receives at most one frame even when a member of
// several targeted groups.
func (m *Manager) PushToGroups(groupIDs []uuid.UUID, event string, data json.RawMessage) {
	m.RLock()
	targets := make(map[uuid.UUID]*Client)
	for _, gid := range groupIDs {
		for uid, client := range m.rooms[gid] {
			targets[uid] = client
		}
	}
	m.RUnlock()

	for uid, client := range targets {
		if err := client.WriteMessage(models.WSMessage{Event: event, Data: data}); err != nil {
			logger.Warn("Websocket room push failed",
				logger.String("user_id", uid.String()),
				logger.Err(err))
		}
	}
}

// ClientCount returns the number of connected clients
func (m *Manager) ClientCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// SendError sends an error frame to a connection
func (m *Manager) SendError(client *Client, code, message string) error {
	data, err := json.Marshal(map[string]string{"code": code, "message": message})
	if err != nil {
		return fmt.Errorf("error marshaling error frame: %w", err)
	}
	return client.WriteMessage(models.WSMessage{Event: "error", Data: data})
}
