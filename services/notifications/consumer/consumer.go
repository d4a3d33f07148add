// Package consumer routes notification events from the message bus to
// connected websocket clients.
package consumer

import (
	"github.com/alumnet/backend/internal/pkg/logger"
	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/internal/pkg/nsq"
	"github.com/alumnet/backend/internal/pkg/websocket"
)

// Dispatcher consumes notification messages and pushes them to the
// websocket manager.
type Dispatcher struct {
	manager *websocket.Manager
}

// NewDispatcher creates a new notification dispatcher
func NewDispatcher(manager *websocket.Manager) *Dispatcher {
	return &Dispatcher{manager: manager}
}

// HandleMessage processes one notification from the bus. Malformed
// payloads are dropped rather than requeued; a message that cannot be
// decoded now never will be.
func (d *Dispatcher) HandleMessage(body []byte) error {
	var n models.Notification
	if err := nsq.UnmarshalMessage(body, &n); err != nil {
		logger.Warn("Dropping malformed notification", logger.Err(err))
		return nil
	}

	switch {
	case n.UserID != nil:
		d.manager.PushToUser(*n.UserID, n.Event, n.Data)
	case len(n.GroupIDs) > 0:
		d.manager.PushToGroups(n.GroupIDs, n.Event, n.Data)
	default:
		logger.Warn("Dropping notification with no target",
			logger.String("event", n.Event))
	}
	return nil
}
