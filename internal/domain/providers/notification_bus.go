package providers

import (
	"context"

	"github.com/mediguide/backend/internal/domain/entities"
)

// NotificationBus fans user-facing notifications out to subscribers with
// an explicit subscribe/unsubscribe lifecycle: a subscription lives until
// its context is canceled, after which the returned channel is closed.
type NotificationBus interface {
	Publish(ctx context.Context, n *entities.Notification) error
	Subscribe(ctx context.Context) (<-chan *entities.Notification, error)
	Close() error
}

// NotificationChannel is the bus channel name used by distributed
// implementations (Redis pub/sub).
const NotificationChannel = "notifications:all"
