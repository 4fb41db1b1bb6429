package redis

import (
	"errors"

	"github.com/huynhanx03/go-utilskit/pkg/common/cache"
)

var (
	ErrConnectionFailed = errors.New("failed to connect to redis")
	ErrPingFailed       = errors.New("failed to ping redis")
	ErrKeyNotFound      = cache.ErrCacheMiss
	ErrNilConfig        = errors.New("redis config is nil")
)
