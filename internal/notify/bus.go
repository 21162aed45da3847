// Package notify implements the in-process notification channel for
// short-lived user-facing messages. Any layer may emit; the single display
// surface (Center) subscribes and owns the live toast list.
package notify

import "sync"

const (
	KindError   Kind = "error"
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
)

type (
	Kind string

	// Message is what emitters hand to the bus. Toast identity and lifetime
	// are assigned by the display surface, not here.
	Message struct {
		Kind Kind
		Text string
	}

	Listener func(Message)

	// Bus is a synchronous, order-preserving broadcast to all registered
	// listeners. Emit is fire-and-forget: no return value, no failure mode.
	Bus struct {
		mu        sync.Mutex
		nextID    int
		order     []int
		listeners map[int]Listener
	}
)

func NewBus() *Bus {
	return &Bus{listeners: make(map[int]Listener)}
}

// Subscribe registers fn and returns its deregistration handle. The caller
// must invoke the handle on teardown so the bus never delivers to a dead
// receiver. Unsubscribing twice is harmless.
func (b *Bus) Subscribe(fn Listener) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.order = append(b.order, id)
	b.listeners[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.listeners[id]; !ok {
			return
		}
		delete(b.listeners, id)
		for i, v := range b.order {
			if v == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// Emit broadcasts to every listener in registration order, synchronously.
// Listeners run outside the bus lock so they may emit or unsubscribe.
func (b *Bus) Emit(kind Kind, text string) {
	b.mu.Lock()
	targets := make([]Listener, 0, len(b.order))
	for _, id := range b.order {
		targets = append(targets, b.listeners[id])
	}
	b.mu.Unlock()

	msg := Message{Kind: kind, Text: text}
	for _, fn := range targets {
		fn(msg)
	}
}

func (b *Bus) Error(text string)   { b.Emit(KindError, text) }
func (b *Bus) Success(text string) { b.Emit(KindSuccess, text) }
func (b *Bus) Info(text string)    { b.Emit(KindInfo, text) }
