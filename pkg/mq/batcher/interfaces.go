package batcher

import (
	"context"
	"time"
)

// Consumer processes a batch of items.
// The batch is owned by the consumer once Consume is called.
type Consumer[T any] interface {
	Consume(ctx context.Context, batch []T) error
}

// ConsumerFunc adapts a function to Consumer.
type ConsumerFunc[T any] func(ctx context.Context, batch []T) error

func (f ConsumerFunc[T]) Consume(ctx context.Context, batch []T) error {
	return f(ctx, batch)
}

// Config holds configuration for the Batcher.
type Config struct {
	// Size is the number of buffered items that triggers a flush.
	Size int
	// FlushInterval flushes a partial batch periodically. 0 disables it.
	FlushInterval time.Duration
	// OnError receives errors returned by the consumer on size and interval flushes.
	OnError func(error)
}

// Stats is a snapshot of batcher counters.
type Stats struct {
	Pushed  int64
	Batches int64
	Failed  int64
}
