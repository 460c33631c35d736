// Package events provides the notification bus implementations: an
// in-process bus for single-instance deployments and a Redis pub/sub bus
// for fan-out across instances.
package events

import (
	"context"
	"sync"

	"github.com/mediguide/backend/internal/domain/entities"
	"github.com/mediguide/backend/internal/domain/providers"
)

// MemoryBus is the in-process NotificationBus. Slow subscribers drop
// notifications rather than block publishers.
type MemoryBus struct {
	mu          sync.RWMutex
	subscribers map[chan *entities.Notification]struct{}
	closed      bool
}

// NewMemoryBus creates an in-memory notification bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		subscribers: make(map[chan *entities.Notification]struct{}),
	}
}

// Publish delivers n to every live subscriber.
func (b *MemoryBus) Publish(_ context.Context, n *entities.Notification) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return nil
	}
	for sub := range b.subscribers {
		select {
		case sub <- n:
		default:
			// Subscriber buffer full, drop for this subscriber.
		}
	}
	return nil
}

// Subscribe registers a subscriber whose channel is closed when ctx is
// canceled or the bus shuts down.
func (b *MemoryBus) Subscribe(ctx context.Context) (<-chan *entities.Notification, error) {
	ch := make(chan *entities.Notification, 100)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, nil
	}
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.remove(ch)
	}()

	return ch, nil
}

// Close shuts the bus down and closes all subscriber channels.
func (b *MemoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for sub := range b.subscribers {
		close(sub)
	}
	b.subscribers = make(map[chan *entities.Notification]struct{})
	return nil
}

func (b *MemoryBus) remove(ch chan *entities.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subscribers[ch]; !ok {
		return
	}
	delete(b.subscribers, ch)
	close(ch)
}

var _ providers.NotificationBus = (*MemoryBus)(nil)
