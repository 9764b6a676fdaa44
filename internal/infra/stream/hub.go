// Package stream fans admin events out to the dashboard clients connected
// to this process.
package stream

import (
	"log/slog"
	"sync"

	"vradmin/internal/domain/service"
)

const (
	defaultBuffer = 16

	// recentEvents is how many event ids are remembered for de-duplication.
	recentEvents = 256
)

// Hub is an in-process broadcaster. Slow subscribers lose events instead of
// blocking the publisher. An event id seen recently is delivered only once, so
// an event emitted locally and relayed back from the bus reaches clients once.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uint64]chan *service.AdminEvent
	nextID      uint64
	buffer      int
	logger      *slog.Logger

	seenMu sync.Mutex
	seen   map[string]struct{}
	ring   []string
	next   int
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subscribers: make(map[uint64]chan *service.AdminEvent),
		buffer:      defaultBuffer,
		logger:      logger,
		seen:        make(map[string]struct{}, recentEvents),
		ring:        make([]string, recentEvents),
	}
}

// firstSighting records id and reports whether it was new.
func (h *Hub) firstSighting(id string) bool {
	if id == "" {
		return true
	}

	h.seenMu.Lock()
	defer h.seenMu.Unlock()

	if _, ok := h.seen[id]; ok {
		return false
	}
	if old := h.ring[h.next]; old != "" {
		delete(h.seen, old)
	}
	h.ring[h.next] = id
	h.next = (h.next + 1) % len(h.ring)
	h.seen[id] = struct{}{}

	return true
}

// Subscribe registers a client. The returned cancel function unregisters it
// and closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe() (<-chan *service.AdminEvent, func()) {
	ch := make(chan *service.AdminEvent, h.buffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subscribers[id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, id)
			h.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// Broadcast delivers event to every subscriber without blocking.
func (h *Hub) Broadcast(event *service.AdminEvent) {
	if !h.firstSighting(event.ID) {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			h.logger.Warn("Dropping event for slow stream subscriber",
				slog.Uint64("subscriber", id),
				slog.String("type", event.Type),
			)
		}
	}
}

// Subscribers returns the number of connected clients.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers)
}

var _ service.EventBroadcaster = (*Hub)(nil)
