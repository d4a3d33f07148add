package usecase

import (
	"github.com/alumnet/backend/internal/pkg/notify"
	"github.com/alumnet/backend/services/events"
)

// EventUC implements the event usecase
type EventUC struct {
	eventRepo events.EventRepo
	notifier  notify.Publisher
}

// NewEventUC creates a new event usecase instance
func NewEventUC(eventRepo events.EventRepo, notifier notify.Publisher) *EventUC {
	return &EventUC{
		eventRepo: eventRepo,
		notifier:  notifier,
	}
}
