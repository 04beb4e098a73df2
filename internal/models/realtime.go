package models

import "time"

// Event describes a single registry mutation. The event hub fans these out
// to connected clients so they can re-read the affected collection.
type Event struct {
	Entity    string    `json:"entity"` // "property", "room", "tenant", ...
	Action    string    `json:"action"` // "created", "updated", "deleted"
	EntityID  string    `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)
