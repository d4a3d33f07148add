// Package notify publishes notification events to the message bus.
// Usecases fire-and-forget through this interface; delivery to
// connected websocket clients happens in the notifications consumer.
package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alumnet/backend/internal/pkg/models"
	"github.com/alumnet/backend/internal/pkg/nsq"
)

// TopicNotifications is the NSQ topic carrying notification events
const TopicNotifications = "community.notifications"

// Publisher pushes notification events to the bus
type Publisher interface {
	NotifyUser(event string, userID uuid.UUID, data interface{}) error
	NotifyGroups(event string, groupIDs []uuid.UUID, data interface{}) error
}

// NSQPublisher publishes notifications to an NSQ topic
type NSQPublisher struct {
	producer *nsq.Producer
	topic    string
}

// NewNSQPublisher creates a publisher bound to a topic
func NewNSQPublisher(producer *nsq.Producer, topic string) *NSQPublisher {
	return &NSQPublisher{producer: producer, topic: topic}
}

// NotifyUser publishes a direct notification for a single user
func (p *NSQPublisher) NotifyUser(event string, userID uuid.UUID, data interface{}) error {
	n, err := build(event, data)
	if err != nil {
		return err
	}
	n.UserID = &userID
	return p.producer.Publish(p.topic, n)
}

// NotifyGroups publishes a notification fanned out to group members
func (p *NSQPublisher) NotifyGroups(event string, groupIDs []uuid.UUID, data interface{}) error {
	if len(groupIDs) == 0 {
		return nil
	}
	n, err := build(event, data)
	if err != nil {
		return err
	}
	n.GroupIDs = groupIDs
	return p.producer.Publish(p.topic, n)
}

func build(event string, data interface{}) (*models.Notification, error) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal notification data: %w", err)
		}
		raw = b
	}
	return &models.Notification{
		Event:     event,
		Data:      raw,
		CreatedAt: time.Now(),
	}, nil
}

// NoopPublisher discards notifications. Used in tests and when the
// bus is disabled.
type NoopPublisher struct{}

// NotifyUser discards the notification
func (NoopPublisher) NotifyUser(string, uuid.UUID, interface{}) error { return nil }

// NotifyGroups discards the notification
func (NoopPublisher) NotifyGroups(string, []uuid.UUID, interface{}) error { return nil }
