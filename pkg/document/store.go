package document

import "context"

// Document is a named blob of data.
type Document struct {
	Name string
	Data []byte
}

// Store persists documents by name. Missing documents are reported with ErrNotFound.
type Store interface {
	Save(ctx context.Context, name string, data []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
	Remove(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
	CreateDir(ctx context.Context, name string, parents bool) error
}
