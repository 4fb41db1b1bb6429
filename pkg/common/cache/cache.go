package cache

import (
	"context"
	"time"
)

// CacheEngine defines the standard interface for remote caching operations.
// Get reports a missing key with ok == false and an error matching ErrCacheMiss.
type CacheEngine interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	InvalidatePrefix(ctx context.Context, prefix string) error
	Close()
}
