package document

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-utilskit/pkg/common/cache"
)

// CacheStore keeps documents in a remote cache under "<prefix><name>".
// The key space is flat, so directories do not exist.
type CacheStore struct {
	engine cache.CacheEngine
	prefix string
	ttl    time.Duration
}

var _ Store = (*CacheStore)(nil)

// NewCacheStore wraps engine. A zero ttl keeps documents forever.
func NewCacheStore(engine cache.CacheEngine, prefix string, ttl time.Duration) *CacheStore {
	return &CacheStore{
		engine: engine,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *CacheStore) Save(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return ErrEmptyName
	}
	return errors.Wrap(s.engine.Set(ctx, s.key(name), data, s.ttl), "failed to set key")
}

func (s *CacheStore) Load(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	data, ok, err := s.engine.Get(ctx, s.key(name))
	if errors.Is(err, cache.ErrCacheMiss) || (err == nil && !ok) {
		return nil, errors.Wrap(ErrNotFound, name)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get key")
	}
	return data, nil
}

func (s *CacheStore) Remove(ctx context.Context, name string) error {
	exists, err := s.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Wrap(ErrNotFound, name)
	}
	return errors.Wrap(s.engine.Delete(ctx, s.key(name)), "failed to delete key")
}

func (s *CacheStore) Exists(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, ErrEmptyName
	}
	exists, err := s.engine.Exists(ctx, s.key(name))
	if err != nil {
		return false, errors.Wrap(err, "failed to check key")
	}
	return exists, nil
}

// CreateDir is a no-op.
func (s *CacheStore) CreateDir(context.Context, string, bool) error {
	return nil
}

// Clear removes every document under the store prefix.
// A store without a prefix shares the whole key space and cannot be cleared.
func (s *CacheStore) Clear(ctx context.Context) error {
	if s.prefix == "" {
		return ErrEmptyPrefix
	}
	return errors.Wrap(s.engine.InvalidatePrefix(ctx, s.prefix), "failed to clear documents")
}

func (s *CacheStore) key(name string) string {
	return s.prefix + name
}
