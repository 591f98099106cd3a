package ecs

// EventType names an event pushed by a system during Update.
type EventType string

const (
	// EventColorChanged is pushed every frame the spine head is close enough
	// to the pointer to pick a new palette color.
	EventColorChanged EventType = "color_changed"
	// EventSpineRebuilt is pushed when a tuning change rebuilds the spine.
	EventSpineRebuilt EventType = "spine_rebuilt"
)

// Event is a generic ECS event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue.
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

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
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
