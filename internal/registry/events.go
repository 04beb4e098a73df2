package registry

import (
	"time"

	"tenanta/backend/internal/models"
)

// EventPublisher receives one Event per committed mutation. The event hub
// implements this; tests plug in mocks. Publish must not block the caller.
type EventPublisher interface {
	Publish(event models.Event)
}

// NopPublisher discards all events.
type NopPublisher struct{}

func (NopPublisher) Publish(models.Event) {}

func newEvent(entity, action, entityID string) models.Event {
	return models.Event{
		Entity:    entity,
		Action:    action,
		EntityID:  entityID,
		Timestamp: time.Now(),
	}
}
