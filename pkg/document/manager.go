package document

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-utilskit/pkg/logger"
)

// Manager wraps a Store and logs every failure as a file fault before returning it.
type Manager struct {
	store Store
	log   *logger.Logger
	limit int
}

// Option configures a Manager
type Option func(*Manager)

// WithLogger sets the logger used for fault reporting.
func WithLogger(l *logger.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithLimit caps the number of store calls in flight during batch operations.
// 0 means unbounded.
func WithLimit(limit int) Option {
	return func(m *Manager) {
		m.limit = limit
	}
}

func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		log:   logger.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Store returns the underlying store
func (m *Manager) Store() Store {
	return m.store
}

// CreateDirectory creates the named directory, with its parents when intermediate is set.
func (m *Manager) CreateDirectory(ctx context.Context, name string, intermediate bool) error {
	if name == "" {
		return m.fault("create directory", name, ErrEmptyName)
	}
	if err := m.store.CreateDir(ctx, name, intermediate); err != nil {
		return m.fault("create directory", name, err)
	}
	return nil
}

// Save stores data under name, replacing any previous content.
func (m *Manager) Save(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return m.fault("save", name, ErrEmptyName)
	}
	if err := m.store.Save(ctx, name, data); err != nil {
		return m.fault("save", name, err)
	}
	return nil
}

// Content returns the stored data for name.
func (m *Manager) Content(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, m.fault("read", name, ErrEmptyName)
	}
	data, err := m.store.Load(ctx, name)
	if err != nil {
		return nil, m.fault("read", name, err)
	}
	return data, nil
}

func (m *Manager) Remove(ctx context.Context, name string) error {
	if name == "" {
		return m.fault("remove", name, ErrEmptyName)
	}
	if err := m.store.Remove(ctx, name); err != nil {
		return m.fault("remove", name, err)
	}
	return nil
}

// Exists reports whether name is stored. Lookup failures are logged and reported as absent.
func (m *Manager) Exists(ctx context.Context, name string) bool {
	if name == "" {
		return false
	}
	ok, err := m.store.Exists(ctx, name)
	if err != nil {
		_ = m.fault("exists", name, err)
		return false
	}
	return ok
}

func (m *Manager) fault(op, name string, err error) error {
	m.log.Log(logger.TypeFile, "failed to "+op, err, zap.String("document", name))
	return errors.Wrapf(err, "%s %q", op, name)
}
