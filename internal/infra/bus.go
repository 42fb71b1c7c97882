package infra

import "sync"

// EventType represents the type of event in the system
type EventType int

const (
	LeapSecondsInstalled EventType = iota
	LeapSecondsRejected
	LeapSecondsExpired
	UT1Loaded
)

// String returns the string representation of the EventType
func (et EventType) String() string {
	switch et {
	case LeapSecondsInstalled:
		return "LeapSecondsInstalled"
	case LeapSecondsRejected:
		return "LeapSecondsRejected"
	case LeapSecondsExpired:
		return "LeapSecondsExpired"
	case UT1Loaded:
		return "UT1Loaded"
	default:
		return "Unknown"
	}
}

type Event interface{ EventType() EventType }
type Handler func(Event)

// Bus fans events out to subscribers synchronously. Publish may be called
// from the reload goroutine while the CLI subscribes.
type Bus struct {
	mu   sync.RWMutex
	subs map[EventType][]Handler
}

func NewBus() *Bus { return &Bus{subs: map[EventType][]Handler{}} }

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	handlers := b.subs[e.EventType()]
	b.mu.RUnlock()
	for _, h := range handlers {
		h(e)
	}
}

func (b *Bus) Subscribe(evt EventType, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[evt] = append(b.subs[evt], h)
}
