package core

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Player  int // player index, -1 when not tied to a player
	Points  int
	Payload interface{}
}

type EventType uint16

const (
	EvtShotFired EventType = iota
	EvtPlayerHit
	EvtEnemyDestroyed
	EvtSpecialSpawned
	EvtSpecialDestroyed
	EvtSpecialEscaped
	EvtRoundFinished
	EvtRecordSaved
)

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch. Safe on a nil bus.
func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

// Dispatch processes all queued events
func (eb *EventBus) Dispatch() {
	for _, e := range eb.queue {
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
	eb.queue = eb.queue[:0]
}
