package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/mediguide/backend/internal/domain/entities"
	"github.com/mediguide/backend/internal/domain/providers"
	redisclient "github.com/mediguide/backend/internal/infrastructure/clients/redis"
)

// RedisBus implements the NotificationBus over Redis Pub/Sub so every
// server instance sees notifications published by any other instance.
type RedisBus struct {
	client      *redisclient.Client
	pubsub      *redis.PubSub
	mu          sync.RWMutex
	subscribers map[chan *entities.Notification]struct{}
	ctx         context.Context
	cancel      context.CancelFunc
	once        sync.Once
}

// NewRedisBus creates a Redis-backed notification bus.
func NewRedisBus(client *redisclient.Client) *RedisBus {
	ctx, cancel := context.WithCancel(context.Background())
	return &RedisBus{
		client:      client,
		subscribers: make(map[chan *entities.Notification]struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Publish marshals n and publishes it on the shared notification channel.
func (b *RedisBus) Publish(ctx context.Context, n *entities.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := b.client.Client().Publish(ctx, providers.NotificationChannel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

// Subscribe registers a local subscriber. The Redis subscription is opened
// lazily on the first subscriber and shared by all of them.
func (b *RedisBus) Subscribe(ctx context.Context) (<-chan *entities.Notification, error) {
	b.mu.Lock()
	if b.pubsub == nil {
		b.pubsub = b.client.Client().Subscribe(b.ctx, providers.NotificationChannel)
		go b.receive(b.pubsub)
	}

	ch := make(chan *entities.Notification, 100)
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.remove(ch)
	}()

	return ch, nil
}

func (b *RedisBus) receive(pubsub *redis.PubSub) {
	msgs := pubsub.Channel()
	for {
		select {
		case <-b.ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}

			var n entities.Notification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				log.Warn().Err(err).Msg("failed to unmarshal notification from redis")
				continue
			}

			b.mu.RLock()
			for sub := range b.subscribers {
				select {
				case sub <- &n:
				default:
					// Subscriber buffer full, drop for this subscriber.
				}
			}
			b.mu.RUnlock()
		}
	}
}

func (b *RedisBus) remove(ch chan *entities.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subscribers[ch]; !ok {
		return
	}
	delete(b.subscribers, ch)
	close(ch)
}

// Close tears down the Redis subscription and closes all subscriber
// channels.
func (b *RedisBus) Close() error {
	var err error
	b.once.Do(func() {
		b.cancel()

		b.mu.Lock()
		defer b.mu.Unlock()
		for sub := range b.subscribers {
			close(sub)
		}
		b.subscribers = make(map[chan *entities.Notification]struct{})
		if b.pubsub != nil {
			err = b.pubsub.Close()
			b.pubsub = nil
		}
	})
	return err
}

var _ providers.NotificationBus = (*RedisBus)(nil)
