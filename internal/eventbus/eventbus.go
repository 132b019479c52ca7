// Package eventbus fans allocation and vacation events out to in-process
// listeners. Publishing never blocks the engine: a listener that falls behind
// its buffer misses events rather than stalling an allocation run.
package eventbus

import "sync"

// subscriberBuffer is the per-listener channel capacity.
const subscriberBuffer = 16

// Event is an opaque payload. Listeners type-switch on the concrete types
// published by the core packages.
type Event interface{}

// EventBus is the publish side plus subscription management.
type EventBus interface {
	Publish(Event)
	Subscribe() <-chan Event
	Unsubscribe(<-chan Event)
	Close()
}

// Bus is the default EventBus. The zero value is not usable; construct it
// with New.
type Bus struct {
	mu        sync.RWMutex
	listeners []chan Event
	closed    bool
}

// New returns an open bus with no listeners.
func New() *Bus { return &Bus{} }

// Publish hands the event to every listener with buffer room. Events published
// after Close are dropped.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.listeners {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe registers a listener and returns its channel. Subscribing to a
// closed bus yields an already-closed channel.
func (b *Bus) Subscribe() <-chan Event {
	ch := make(chan Event, subscriberBuffer)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.listeners = append(b.listeners, ch)
	return ch
}

// Unsubscribe drops the listener and closes its channel. Unknown channels are
// ignored.
func (b *Bus) Unsubscribe(sub <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, ch := range b.listeners {
		if ch != sub {
			continue
		}
		b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
		if !b.closed {
			close(ch)
		}
		return
	}
}

// Close shuts the bus: every listener channel is closed and further publishes
// become no-ops. Close is idempotent.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.listeners {
		close(ch)
	}
	b.listeners = nil
}
