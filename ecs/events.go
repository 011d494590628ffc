package ecs

// EventKind identifies a game event.
type EventKind string

const (
	EventEndpointReached EventKind = "endpoint_reached"
	EventTargetStuck     EventKind = "target_stuck"
	EventHotspotTapped   EventKind = "hotspot_tapped"
)

// Event is a generic ECS event payload.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue. Undelivered events are dropped at the
// end of each World.Update.
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

// Take removes and returns the events of the given kind, keeping the rest
// queued in order.
func (q *EventQueue) Take(kind EventKind) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Kind == kind {
			out = append(out, evt)
			continue
		}
		kept = append(kept, evt)
	}
	q.items = kept
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
