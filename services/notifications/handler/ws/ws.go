// Package ws exposes the realtime notification endpoint.
package ws

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/alumnet/backend/internal/pkg/logger"
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/internal/pkg/websocket"
)

// GroupLister resolves a user's group memberships at connect time
type GroupLister interface {
	ListUserGroups(ctx context.Context, userID uuid.UUID) ([]models.Group, error)
}

// WSHandler upgrades notification connections and keeps them
// registered with the manager for their lifetime.
type WSHandler struct {
	manager *websocket.Manager
	groups  GroupLister
}

// NewWSHandler creates a new websocket handler
func NewWSHandler(manager *websocket.Manager, groups GroupLister) *WSHandler {
	return &WSHandler{manager: manager, groups: groups}
}

// Serve authenticates the handshake, snapshots the user's group
// memberships into room subscriptions, and holds the connection open
// until the client goes away. Clients reconnect to pick up membership
// changes.
func (h *WSHandler) Serve(c echo.Context) error {
	claims, err := h.manager.Authenticate(c)
	if err != nil {
		return err
	}

	groups, err := h.groups.ListUserGroups(c.Request().Context(), claims.UserID)
	if err != nil {
		logger.Error("Failed to load memberships for websocket",
			logger.String("user_id", claims.UserID.String()),
			logger.Err(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to establish connection")
	}
	groupIDs := make([]uuid.UUID, len(groups))
	for i, g := range groups {
		groupIDs[i] = g.ID
	}

	conn, err := h.manager.Upgrade(c)
	if err != nil {
		logger.Warn("Websocket upgrade failed", logger.Err(err))
		return err
	}

	client := &websocket.Client{
		UserID:   claims.UserID,
		Role:     claims.Role,
		GroupIDs: groupIDs,
		Conn:     conn,
	}
	h.manager.AddClient(client)
	logger.Info("Websocket client connected",
		logger.String("user_id", claims.UserID.String()))

	defer func() {
		h.manager.RemoveClient(claims.UserID)
		conn.Close()
		logger.Info("Websocket client disconnected",
			logger.String("user_id", claims.UserID.String()))
	}()

	// The server never expects client frames; the read loop exists to
	// notice the peer closing.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}
