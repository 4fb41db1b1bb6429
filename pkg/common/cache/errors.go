package cache

import "errors"

// ErrCacheMiss is returned by CacheEngine.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")
