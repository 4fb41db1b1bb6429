package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	redisV9 "github.com/redis/go-redis/v9"

	"github.com/huynhanx03/go-utilskit/pkg/common/cache"
	"github.com/huynhanx03/go-utilskit/pkg/settings"
	"github.com/huynhanx03/go-utilskit/pkg/utils"
)

const (
	defaultHost            = "localhost"
	defaultPort            = 6379
	defaultPoolSize        = 10
	defaultMinIdleConns    = 5
	defaultPoolTimeout     = 5
	defaultDialTimeout     = 5
	defaultReadTimeout     = 3
	defaultWriteTimeout    = 3
	defaultMaxRetries      = 3
	defaultMinRetryBackoff = 300 // millis
	defaultMaxRetryBackoff = 500 // millis

	pingTimeout = 5 * time.Second
	scanCount   = 100
)

type RedisEngine struct {
	client *redisV9.Client
	config *settings.Redis
}

var _ cache.CacheEngine = (*RedisEngine)(nil)

// connect initializes the Redis client
func (r *RedisEngine) connect() error {
	r.setDefaultConfig()

	r.client = redisV9.NewClient(&redisV9.Options{
		Addr:            fmt.Sprintf("%s:%d", r.config.Host, r.config.Port),
		Password:        r.config.Password,
		DB:              r.config.Database,
		PoolSize:        r.config.PoolSize,
		MinIdleConns:    r.config.MinIdleConns,
		MaxRetries:      r.config.MaxRetries,
		DialTimeout:     utils.ToDuration(r.config.DialTimeout),
		ReadTimeout:     utils.ToDuration(r.config.ReadTimeout),
		WriteTimeout:    utils.ToDuration(r.config.WriteTimeout),
		PoolTimeout:     utils.ToDuration(r.config.PoolTimeout),
		MinRetryBackoff: utils.ToDurationMs(r.config.MinRetryBackoff),
		MaxRetryBackoff: utils.ToDurationMs(r.config.MaxRetryBackoff),
	})

	// Ping test
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := r.client.Ping(ctx).Err(); err != nil {
		_ = r.client.Close()
		return fmt.Errorf("%w: %v", ErrPingFailed, err)
	}

	return nil
}

// setDefaultConfig sets default values for Redis configuration
func (r *RedisEngine) setDefaultConfig() {
	if r.config.Host == "" {
		r.config.Host = defaultHost
	}
	if r.config.Port == 0 {
		r.config.Port = defaultPort
	}
	if r.config.PoolSize == 0 {
		r.config.PoolSize = defaultPoolSize
	}
	if r.config.MinIdleConns == 0 {
		r.config.MinIdleConns = defaultMinIdleConns
	}
	if r.config.PoolTimeout == 0 {
		r.config.PoolTimeout = defaultPoolTimeout
	}
	if r.config.DialTimeout == 0 {
		r.config.DialTimeout = defaultDialTimeout
	}
	if r.config.ReadTimeout == 0 {
		r.config.ReadTimeout = defaultReadTimeout
	}
	if r.config.WriteTimeout == 0 {
		r.config.WriteTimeout = defaultWriteTimeout
	}
	if r.config.MaxRetries == 0 {
		r.config.MaxRetries = defaultMaxRetries
	}
	if r.config.MinRetryBackoff == 0 {
		r.config.MinRetryBackoff = defaultMinRetryBackoff
	}
	if r.config.MaxRetryBackoff == 0 {
		r.config.MaxRetryBackoff = defaultMaxRetryBackoff
	}
}

// Get value by key
func (r *RedisEngine) Get(ctx context.Context, key string) ([]byte, bool, error) {
	byteValue, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redisV9.Nil) {
		return nil, false, ErrKeyNotFound
	}
	if err != nil {
		return nil, false, err
	}
	return byteValue, true, nil
}

// Set value by key. A zero ttl keeps the key forever.
func (r *RedisEngine) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Delete key
func (r *RedisEngine) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Exists reports whether key is present
func (r *RedisEngine) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// InvalidatePrefix invalidates all keys with a given prefix.
// The prefix is matched literally, glob characters included.
func (r *RedisEngine) InvalidatePrefix(ctx context.Context, prefix string) error {
	iter := r.client.Scan(ctx, 0, escapeGlob(prefix)+"*", scanCount).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		return r.client.Del(ctx, keys...).Err()
	}
	return nil
}

// escapeGlob quotes the characters SCAN MATCH treats as pattern syntax
func escapeGlob(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Close closes the Redis client
func (r *RedisEngine) Close() {
	if r.client != nil {
		_ = r.client.Close()
	}
}

// Client returns the underlying redis client (Escape hatch)
func (r *RedisEngine) Client() *redisV9.Client {
	return r.client
}
