package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediguide/backend/internal/domain/entities"
)

func TestMemoryBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	defer bus.Close()

	ctx := context.Background()
	sub1, err := bus.Subscribe(ctx)
	require.NoError(t, err)
	sub2, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	n := &entities.Notification{ID: "n1", Kind: entities.NotificationInfo, Title: "hello"}
	require.NoError(t, bus.Publish(ctx, n))

	for _, sub := range []<-chan *entities.Notification{sub1, sub2} {
		select {
		case got := <-sub:
			assert.Equal(t, "n1", got.ID)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for notification")
		}
	}
}

func TestMemoryBus_CancelClosesChannel(t *testing.T) {
	bus := NewMemoryBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-sub:
		assert.False(t, open, "channel should be closed after cancel")
	case <-time.After(time.Second):
		t.Fatal("channel not closed after context cancel")
	}

	// Publishing after the only subscriber left must not block or error.
	assert.NoError(t, bus.Publish(context.Background(), &entities.Notification{ID: "n2"}))
}

func TestMemoryBus_CloseClosesSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	sub, err := bus.Subscribe(context.Background())
	require.NoError(t, err)

	require.NoError(t, bus.Close())

	_, open := <-sub
	assert.False(t, open)

	// Close is idempotent and publish after close is a no-op.
	assert.NoError(t, bus.Close())
	assert.NoError(t, bus.Publish(context.Background(), &entities.Notification{ID: "n3"}))
}

func TestMemoryBus_SubscribeAfterClose(t *testing.T) {
	bus := NewMemoryBus()
	require.NoError(t, bus.Close())

	sub, err := bus.Subscribe(context.Background())
	require.NoError(t, err)
	_, open := <-sub
	assert.False(t, open, "subscription on a closed bus yields a closed channel")
}
