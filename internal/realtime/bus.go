// Package realtime owns the upstream event channel: a single long-lived
// WebSocket connection whose frames are decoded once and published on a
// typed bus. Transport and presentation never meet directly; consumers
// subscribe to the bus and apply the visibility rules.
package realtime

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/indiabills/console/internal/models"
)

// Wire event names pushed by the upstream channel.
const (
	EventNewAnnouncement = "newAnnouncement"
	EventNewNote         = "newNote"
)

// Bus is a typed fan-out of decoded notifications. Subscribers get
// buffered channels; a slow subscriber drops events rather than
// blocking the reader loop.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan models.Notification
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan models.Notification)}
}

// Subscribe registers a consumer. The returned cancel func removes the
// subscription and closes its channel.
func (b *Bus) Subscribe() (<-chan models.Notification, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan models.Notification, 64)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if c, ok := b.subs[id]; ok {
			close(c)
			delete(b.subs, id)
		}
	}
	return ch, cancel
}

// Publish delivers a notification to every subscriber.
// Non-blocking: drops the event if a subscriber buffer is full.
func (b *Bus) Publish(n models.Notification) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subs {
		select {
		case ch <- n:
		default:
			log.Warn().Int("subscriber", id).Str("notification_id", n.ID).
				Msg("Subscriber buffer full, dropping event")
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
