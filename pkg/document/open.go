package document

import (
	"context"
	"fmt"

	"github.com/huynhanx03/go-utilskit/pkg/common/cache/memory"
	"github.com/huynhanx03/go-utilskit/pkg/database/mongodb"
	"github.com/huynhanx03/go-utilskit/pkg/database/redis"
	"github.com/huynhanx03/go-utilskit/pkg/settings"
	"github.com/huynhanx03/go-utilskit/pkg/utils"
)

const (
	BackendLocal   = "local"
	BackendMemory  = "memory"
	BackendRedis   = "redis"
	BackendMongoDB = "mongodb"

	defaultBasePath = "documents"
)

// OpenStore builds the store selected by cfg.Document.Backend.
// The returned close function releases the backend connection.
func OpenStore(ctx context.Context, cfg *settings.Config) (Store, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.Document.Backend {
	case "", BackendLocal:
		basePath := cfg.Document.BasePath
		if basePath == "" {
			basePath = defaultBasePath
		}
		store, err := NewLocalStore(basePath)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil

	case BackendMemory:
		engine := memory.New(0)
		store := NewCacheStore(engine, cfg.Document.KeyPrefix, utils.ToDuration(cfg.Document.TTL))
		return store, func(context.Context) error {
			engine.Close()
			return nil
		}, nil

	case BackendRedis:
		engine, err := redis.NewConnection(&cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		store := NewCacheStore(engine, cfg.Document.KeyPrefix, utils.ToDuration(cfg.Document.TTL))
		return store, func(context.Context) error {
			engine.Close()
			return nil
		}, nil

	case BackendMongoDB:
		client, err := mongodb.New(ctx, &cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		collection := cfg.Document.Collection
		if collection == "" {
			collection = DefaultCollection
		}
		return NewMongoStore(client.Collection(collection)), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Document.Backend)
	}
}
