package memory

import (
	"context"
	"math/bits"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/huynhanx03/go-utilskit/pkg/common/cache"
)

const defaultShards = 64

// Engine is an in-process CacheEngine.
// Keys are spread over independently locked shards to keep contention low.
type Engine struct {
	shards []*shard
	mask   uint64
	now    func() time.Time
}

type shard struct {
	sync.RWMutex
	data map[string]entry

	// keeps neighbouring shards on separate cache lines
	_ [64]byte
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

var _ cache.CacheEngine = (*Engine)(nil)

// New creates an Engine. shards is rounded up to a power of two, 0 picks a default.
func New(shards int) *Engine {
	if shards <= 0 {
		shards = defaultShards
	}
	n := 1 << bits.Len(uint(shards-1))

	e := &Engine{
		shards: make([]*shard, n),
		mask:   uint64(n - 1),
		now:    time.Now,
	}
	for i := range e.shards {
		e.shards[i] = &shard{data: make(map[string]entry)}
	}
	return e
}

func (e *Engine) shard(key string) *shard {
	return e.shards[xxhash.Sum64String(key)&e.mask]
}

// Get returns a copy of the stored value. Expired keys are dropped on read.
func (e *Engine) Get(_ context.Context, key string) ([]byte, bool, error) {
	s := e.shard(key)

	s.RLock()
	it, ok := s.data[key]
	s.RUnlock()

	if !ok {
		return nil, false, cache.ErrCacheMiss
	}
	if it.expired(e.now()) {
		s.Lock()
		if cur, ok := s.data[key]; ok && cur.expired(e.now()) {
			delete(s.data, key)
		}
		s.Unlock()
		return nil, false, cache.ErrCacheMiss
	}
	return clone(it.value), true, nil
}

// Set stores a copy of value. A zero ttl keeps the key forever.
func (e *Engine) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	it := entry{value: clone(value)}
	if ttl > 0 {
		it.expiresAt = e.now().Add(ttl)
	}

	s := e.shard(key)
	s.Lock()
	s.data[key] = it
	s.Unlock()
	return nil
}

func (e *Engine) Delete(_ context.Context, key string) error {
	s := e.shard(key)
	s.Lock()
	delete(s.data, key)
	s.Unlock()
	return nil
}

func (e *Engine) Exists(_ context.Context, key string) (bool, error) {
	s := e.shard(key)
	s.RLock()
	it, ok := s.data[key]
	s.RUnlock()
	return ok && !it.expired(e.now()), nil
}

// InvalidatePrefix removes every key starting with prefix, one shard at a time.
func (e *Engine) InvalidatePrefix(_ context.Context, prefix string) error {
	for _, s := range e.shards {
		s.Lock()
		for k := range s.data {
			if strings.HasPrefix(k, prefix) {
				delete(s.data, k)
			}
		}
		s.Unlock()
	}
	return nil
}

// Len returns the number of stored keys, expired ones included.
// Shards are counted one after another, so the result is not atomic.
func (e *Engine) Len() int {
	total := 0
	for _, s := range e.shards {
		s.RLock()
		total += len(s.data)
		s.RUnlock()
	}
	return total
}

// Close drops all keys.
func (e *Engine) Close() {
	for _, s := range e.shards {
		s.Lock()
		s.data = make(map[string]entry)
		s.Unlock()
	}
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
