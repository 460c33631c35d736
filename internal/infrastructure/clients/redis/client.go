package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/mediguide/backend/pkg/config"
	apperrors "github.com/mediguide/backend/pkg/errors"
	"github.com/mediguide/backend/pkg/retry"
)

// Client wraps the Redis connection shared by the cache and the
// notification bus.
type Client struct {
	client *redis.Client
}

// NewClient connects to Redis, retrying the initial ping with backoff so a
// Redis container that is still starting does not fail the whole server.
func NewClient(cfg *config.RedisConfig) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	err := retry.Do(context.Background(), retry.DefaultConfig(), func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(ctx).Err()
	}, func(attempt int, err error, nextDelay time.Duration) {
		log.Warn().Err(err).Int("attempt", attempt).Dur("next_delay", nextDelay).
			Msg("redis ping failed, retrying")
	})
	if err != nil {
		_ = client.Close()
		return nil, apperrors.NewExternalError("failed to connect to Redis", err)
	}

	return &Client{client: client}, nil
}

// Client returns the underlying Redis client.
func (c *Client) Client() *redis.Client {
	return c.client
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// Ping verifies the connection to Redis.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
