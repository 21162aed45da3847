package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DisplayWindow is how long a toast stays visible before automatic removal.
const DisplayWindow = 4000 * time.Millisecond

// Toast is one live notification owned by the Center.
type Toast struct {
	ID        string
	Kind      Kind
	Text      string
	CreatedAt time.Time
}

// Center is the display surface for toasts. It subscribes to a Bus, stacks
// toasts in emission order, and schedules each one's removal exactly once.
// Every pending timer maps 1:1 to a live toast; Close cancels them all.
type Center struct {
	mu          sync.Mutex
	ttl         time.Duration
	toasts      []Toast
	timers      map[string]*time.Timer
	unsubscribe func()
	closed      bool
}

// NewCenter attaches a display surface to bus with the standard 4s window.
func NewCenter(bus *Bus) *Center {
	return NewCenterWindow(bus, DisplayWindow)
}

// NewCenterWindow attaches a display surface with a custom display window.
func NewCenterWindow(bus *Bus, ttl time.Duration) *Center {
	c := &Center{
		ttl:    ttl,
		timers: make(map[string]*time.Timer),
	}
	c.unsubscribe = bus.Subscribe(c.receive)
	return c
}

func (c *Center) receive(msg Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	t := Toast{
		ID:        uuid.NewString(),
		Kind:      msg.Kind,
		Text:      msg.Text,
		CreatedAt: time.Now(),
	}
	c.toasts = append(c.toasts, t)
	c.timers[t.ID] = time.AfterFunc(c.ttl, func() { c.Dismiss(t.ID) })
}

// Toasts returns the live toasts in emission order.
func (c *Center) Toasts() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

// Dismiss removes one toast and cancels its pending timer. Unknown IDs are
// ignored, so the auto-removal firing after a manual dismiss is harmless.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

func (c *Center) removeLocked(id string) {
	timer, ok := c.timers[id]
	if !ok {
		return
	}
	timer.Stop()
	delete(c.timers, id)
	for i, t := range c.toasts {
		if t.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			break
		}
	}
}

// Close detaches from the bus and cancels every pending removal timer.
func (c *Center) Close() {
	c.unsubscribe()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for id, timer := range c.timers {
		timer.Stop()
		delete(c.timers, id)
	}
	c.toasts = nil
}
