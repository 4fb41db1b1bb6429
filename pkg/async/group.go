// Package async runs batches of work concurrently and joins on all of them.
//
// Every helper spawns one goroutine per item (or at most limit goroutines for the
// *Limit variants) and blocks the caller until all of them have finished.
// Nothing is cancelled by the executor: ctx is only handed through to the work.
package async

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// TaskGroup applies fn to every item concurrently and returns one result per item.
//
// The returned slice is in completion order, not input order. If the caller needs
// to match results back to items, fn should return the item's key alongside the value.
func TaskGroup[E any, T any](ctx context.Context, items []E, fn func(context.Context, E) T) []T {
	return TaskGroupLimit(ctx, 0, items, fn)
}

// TaskGroupLimit is TaskGroup with at most limit operations in flight.
// A limit <= 0 means unbounded.
func TaskGroupLimit[E any, T any](ctx context.Context, limit int, items []E, fn func(context.Context, E) T) []T {
	if len(items) == 0 {
		return []T{}
	}

	// Every producer gets a slot, so no send ever blocks.
	// The channel is drained by this goroutine alone once all producers are done.
	results := make(chan T, len(items))

	g := newGroup(limit)
	for _, item := range items {
		g.Go(func() error {
			results <- fn(ctx, item)
			return nil
		})
	}
	_ = g.Wait()
	close(results)

	out := make([]T, 0, len(items))
	for r := range results {
		out = append(out, r)
	}
	return out
}

func newGroup(limit int) *errgroup.Group {
	g := new(errgroup.Group)
	if limit > 0 {
		g.SetLimit(limit)
	}
	return g
}
