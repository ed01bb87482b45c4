package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CATALOG_UPDATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewCatalogUpdatedEvent fires when a chat turn adds rooms, furniture
// types, or product configurations to the catalog.
func NewCatalogUpdatedEvent(sessionId string, rooms, furnitureTypes, productConfigs int) Event {
	return BaseEvent{
		Type: "CATALOG_UPDATED",
		Data: map[string]interface{}{
			"session_id":      sessionId,
			"rooms":           rooms,
			"furniture_types": furnitureTypes,
			"product_configs": productConfigs,
		},
		OccurredAt: time.Now(),
	}
}

// NewInterviewCompletedEvent fires when a session reaches its terminal step.
func NewInterviewCompletedEvent(sessionId, summary string) Event {
	return BaseEvent{
		Type: "INTERVIEW_COMPLETED",
		Data: map[string]interface{}{
			"session_id": sessionId,
			"summary":    summary,
		},
		OccurredAt: time.Now(),
	}
}
