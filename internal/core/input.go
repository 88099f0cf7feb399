package core

// PointerKind distinguishes pointer movement from clicks.
type PointerKind int

const (
	PointerNone  PointerKind = iota
	PointerMove              // Cursor moved
	PointerClick             // Primary button clicked
)

// String returns a human-readable name for the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerNone:
		return "None"
	case PointerMove:
		return "Move"
	case PointerClick:
		return "Click"
	default:
		return "Unknown"
	}
}

// PointerEvent is a pointer event in window pixel coordinates.
// Frontends translate terminal cells or window cursor positions into these.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// Move returns a movement event at (x, y).
func Move(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerMove, X: x, Y: y}
}

// Click returns a click event at (x, y).
func Click(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerClick, X: x, Y: y}
}

// EventSource is polled once per tick. PollEvent never blocks; ok is false
// when no event is pending.
type EventSource interface {
	PollEvent() (ev PointerEvent, ok bool)
}

// EventQueue buffers pointer events between ticks.
// Consecutive movement events are coalesced so a fast mouse never builds up
// a backlog; clicks are always kept in order.
type EventQueue struct {
	events []PointerEvent
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]PointerEvent, 0, 8)}
}

// Push appends an event.
func (q *EventQueue) Push(ev PointerEvent) {
	if ev.Kind == PointerMove && len(q.events) > 0 && q.events[len(q.events)-1].Kind == PointerMove {
		q.events[len(q.events)-1] = ev
		return
	}
	q.events = append(q.events, ev)
}

// PollEvent removes and returns the oldest pending event.
func (q *EventQueue) PollEvent() (PointerEvent, bool) {
	if len(q.events) == 0 {
		return PointerEvent{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Clear drops all pending events.
func (q *EventQueue) Clear() {
	q.events = q.events[:0]
}
