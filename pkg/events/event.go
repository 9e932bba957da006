package events

import "time"

// TopicDataChanged carries one message per persisted mutation. The
// backup status consumer counts them to report unsynced changes.
const TopicDataChanged = "DATA_CHANGED"

// Event defines the contract for all system events.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

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

// DataChanged is the payload published on TopicDataChanged.
type DataChanged struct {
	UserId     string    `json:"user_id"`
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}
