package document

import (
	"context"
	"sync/atomic"

	"github.com/huynhanx03/go-utilskit/pkg/async"
)

// Result pairs a document name with the outcome of an operation on it.
// Data is only set by reads.
type Result struct {
	Name string
	Data []byte
	Err  error
}

// SaveAll saves every document concurrently and waits for all attempts.
// Failures are logged, not returned. The count is the number of attempts,
// failed ones included, so it equals len(docs) once SaveAll returns; use
// SaveEach to learn which saves failed.
func (m *Manager) SaveAll(ctx context.Context, docs []Document) int {
	actions := make([]async.Action, len(docs))
	for i, doc := range docs {
		actions[i] = func(ctx context.Context) error {
			return m.Save(ctx, doc.Name, doc.Data)
		}
	}

	var attempts atomic.Int64
	async.RunLimit(ctx, m.limit, actions, func() {
		attempts.Add(1)
	})
	return int(attempts.Load())
}

// SaveEach saves every document concurrently and reports each outcome,
// in completion order. Err is nil for saved documents.
func (m *Manager) SaveEach(ctx context.Context, docs []Document) []Result {
	return async.TaskGroupLimit(ctx, m.limit, docs, func(ctx context.Context, doc Document) Result {
		return Result{Name: doc.Name, Err: m.Save(ctx, doc.Name, doc.Data)}
	})
}

// ContentAll reads every name concurrently. Results arrive in completion order,
// each one carries its name.
func (m *Manager) ContentAll(ctx context.Context, names []string) []Result {
	return async.TaskGroupLimit(ctx, m.limit, names, func(ctx context.Context, name string) Result {
		data, err := m.Content(ctx, name)
		return Result{Name: name, Data: data, Err: err}
	})
}

// RemoveAll removes every name concurrently and returns the failures.
func (m *Manager) RemoveAll(ctx context.Context, names []string) []error {
	actions := make([]async.Action, len(names))
	for i, name := range names {
		actions[i] = func(ctx context.Context) error {
			return m.Remove(ctx, name)
		}
	}
	return async.SettleLimit(ctx, m.limit, actions)
}
