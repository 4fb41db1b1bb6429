package document

import (
	"context"

	"github.com/huynhanx03/go-utilskit/pkg/mq/batcher"
)

// WriteBehind buffers saves and writes them through a Manager in batches.
type WriteBehind struct {
	m *Manager
	b *batcher.Batcher[Document]
}

// writeConsumer saves a batch concurrently through the manager.
type writeConsumer struct {
	m *Manager
}

func (c writeConsumer) Consume(ctx context.Context, batch []Document) error {
	c.m.SaveAll(ctx, dedupe(batch))
	return nil
}

// NewWriteBehind creates a WriteBehind over m. Failed saves are logged by the manager.
func NewWriteBehind(m *Manager, cfg batcher.Config) *WriteBehind {
	return &WriteBehind{
		m: m,
		b: batcher.New[Document](writeConsumer{m: m}, cfg),
	}
}

// Save queues a document for writing.
func (w *WriteBehind) Save(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return ErrEmptyName
	}
	return w.b.Push(ctx, Document{Name: name, Data: data})
}

// Flush writes everything queued so far.
func (w *WriteBehind) Flush(ctx context.Context) error {
	return w.b.Flush(ctx)
}

// Close flushes and stops accepting documents.
func (w *WriteBehind) Close(ctx context.Context) error {
	return w.b.Close(ctx)
}

func (w *WriteBehind) Stats() batcher.Stats {
	return w.b.Stats()
}

// dedupe keeps the last document per name, so concurrent saves within a
// batch never race on the same name.
func dedupe(batch []Document) []Document {
	last := make(map[string]int, len(batch))
	for i, doc := range batch {
		last[doc.Name] = i
	}
	if len(last) == len(batch) {
		return batch
	}

	out := make([]Document, 0, len(last))
	for i, doc := range batch {
		if last[doc.Name] == i {
			out = append(out, doc)
		}
	}
	return out
}
