// Package observer streams simulation frames to websocket spectators.
// Every frame is the list of circles the world would draw, so any client
// that can fill circles can render it.
package observer

import "sync"

// subscriberBuffer bounds how many frames may queue for one spectator.
const subscriberBuffer = 8

// Hub fans encoded frames out to subscribers. Publishing never blocks:
// a subscriber whose buffer is full misses that frame.
type Hub struct {
	mu     sync.Mutex
	subs   map[uint64]chan []byte
	nextID uint64
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]chan []byte)}
}

// Subscribe registers a new subscriber.
func (h *Hub) Subscribe() (uint64, <-chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	ch := make(chan []byte, subscriberBuffer)
	h.subs[h.nextID] = ch
	return h.nextID, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}

// Publish delivers b to every subscriber with room in its buffer.
// Returns the number of subscribers that dropped the frame.
func (h *Hub) Publish(b []byte) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	dropped := 0
	for _, ch := range h.subs {
		select {
		case ch <- b:
		default:
			dropped++
		}
	}
	return dropped
}

// Len returns the number of active subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
