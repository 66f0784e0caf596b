// Package hub fans refresh notifications out to WebSocket subscribers.
package hub

import (
	"log"
	"sync"

	"github.com/luispauloloureiro/unfdashboard/internal/model"
)

// subscriberBuffer bounds each subscriber channel. Refreshes are rare
// (one per reload), so a small buffer is plenty before a consumer is
// considered stuck.
const subscriberBuffer = 16

// Hub broadcasts refresh outcomes to all subscribers. Subscribers that
// stop reading have notifications dropped rather than blocking a reload.
type Hub struct {
	mu          sync.Mutex
	subscribers map[chan model.Refresh]struct{}
	dropped     int64
}

// New creates an empty Hub.
func New() *Hub {
	return &Hub{subscribers: make(map[chan model.Refresh]struct{})}
}

// Subscribe returns a buffered channel receiving every future refresh.
// Callers must Unsubscribe the same channel when done.
func (h *Hub) Subscribe() chan model.Refresh {
	ch := make(chan model.Refresh, subscriberBuffer)
	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a subscriber channel.
func (h *Hub) Unsubscribe(ch chan model.Refresh) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subscribers[ch]; ok {
		delete(h.subscribers, ch)
		close(ch)
	}
}

// Publish sends a refresh to every subscriber, dropping it for any whose
// buffer is full.
func (h *Hub) Publish(r model.Refresh) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subscribers {
		select {
		case ch <- r:
		default:
			h.dropped++
			log.Printf("hub: dropped refresh for slow subscriber (total dropped: %d)", h.dropped)
		}
	}
}

// Dropped returns the number of notifications dropped for slow subscribers.
func (h *Hub) Dropped() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// Close closes every subscriber channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers {
		delete(h.subscribers, ch)
		close(ch)
	}
}
