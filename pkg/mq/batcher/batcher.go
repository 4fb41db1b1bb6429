package batcher

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

const defaultSize = 512

var ErrClosed = errors.New("batcher is closed")

// Batcher groups pushed items and hands them to a Consumer in batches.
//
// A batch is flushed when it reaches Config.Size, on every FlushInterval tick,
// on Flush and on Close. Consumer calls are serialized.
type Batcher[T any] struct {
	cons    Consumer[T]
	onError func(error)

	mu     sync.Mutex
	buf    *stripe[T]
	closed bool

	flushMu  sync.Mutex
	inflight sync.WaitGroup

	pushed  atomic.Int64
	batches atomic.Int64
	failed  atomic.Int64

	stop chan struct{}
	done chan struct{}
}

// New creates a Batcher for type T.
func New[T any](cons Consumer[T], cfg Config) *Batcher[T] {
	if cfg.Size <= 0 {
		cfg.Size = defaultSize
	}

	b := &Batcher[T]{
		cons:    cons,
		onError: cfg.OnError,
		buf:     newStripe[T](cfg.Size),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	if cfg.FlushInterval > 0 {
		go b.loop(cfg.FlushInterval)
	} else {
		close(b.done)
	}
	return b
}

// Push adds an item. A full batch is consumed on the calling goroutine.
func (b *Batcher[T]) Push(ctx context.Context, item T) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	b.pushed.Add(1)
	var batch []T
	if b.buf.push(item) {
		batch = b.buf.take()
		b.inflight.Add(1)
	}
	b.mu.Unlock()

	if batch != nil {
		defer b.inflight.Done()
		b.report(b.consume(ctx, batch))
	}
	return nil
}

// Flush consumes whatever is buffered and returns the consumer error.
func (b *Batcher[T]) Flush(ctx context.Context) error {
	b.mu.Lock()
	batch := b.buf.take()
	b.mu.Unlock()

	if batch == nil {
		return nil
	}
	return b.consume(ctx, batch)
}

// Close stops the interval flush, rejects further pushes and flushes the rest.
// It returns once every batch taken by Push has been consumed.
func (b *Batcher[T]) Close(ctx context.Context) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.mu.Unlock()

	close(b.stop)
	<-b.done

	err := b.Flush(ctx)
	b.inflight.Wait()
	return err
}

// Len returns the number of buffered items.
func (b *Batcher[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.len()
}

func (b *Batcher[T]) Stats() Stats {
	return Stats{
		Pushed:  b.pushed.Load(),
		Batches: b.batches.Load(),
		Failed:  b.failed.Load(),
	}
}

func (b *Batcher[T]) loop(interval time.Duration) {
	defer close(b.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stop:
			return
		case <-ticker.C:
			b.report(b.Flush(context.Background()))
		}
	}
}

func (b *Batcher[T]) consume(ctx context.Context, batch []T) error {
	b.flushMu.Lock()
	defer b.flushMu.Unlock()

	b.batches.Add(1)
	if err := b.cons.Consume(ctx, batch); err != nil {
		b.failed.Add(1)
		return err
	}
	return nil
}

func (b *Batcher[T]) report(err error) {
	if err != nil && b.onError != nil {
		b.onError(err)
	}
}
