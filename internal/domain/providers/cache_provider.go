package providers

import "context"

// CacheProvider defines the interface for response caching backends. The
// cache fronts an immutable dataset, so the port is read-through only:
// entries expire, they are never invalidated.
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error
}
