package ecs

// EventType names a gameplay event.
type EventType string

const (
	EventPlayerDied         EventType = "player_died"
	EventRespawned          EventType = "respawned"
	EventCheckpointReached  EventType = "checkpoint_reached"
	EventJewelCollected     EventType = "jewel_collected"
	EventAllJewelsCollected EventType = "all_jewels_collected"
	EventViewToggled        EventType = "view_toggled"
)

// Event is a gameplay event payload. Entity is the subject; Data carries an
// event specific value.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue. Events stay queued until drained.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
