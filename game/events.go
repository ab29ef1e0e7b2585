package game

// DetonationEvent asks the effects dispatcher to spawn a damaging explosion
// where a homing missile ended its flight.
type DetonationEvent struct {
	Source   EntityID
	Position Vec
	Velocity Vec

	// MaxDistance marks the smaller terminal explosion of a missile that ran
	// out of range rather than reaching its target.
	MaxDistance bool
}

// EventQueue collects detonation intents during a frame. The simulation
// drains it exactly once per frame; drained events are gone.
type EventQueue struct {
	pending []DetonationEvent
}

// Push appends an event
func (q *EventQueue) Push(ev DetonationEvent) {
	q.pending = append(q.pending, ev)
}

// Len returns the number of undrained events
func (q *EventQueue) Len() int {
	return len(q.pending)
}

// Drain returns all queued events and empties the queue
func (q *EventQueue) Drain() []DetonationEvent {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}
