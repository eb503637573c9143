package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Manager is the composition root for forms sharing one error repository.
// It hands out forms and guarantees that at most one live form owns an id.
type Manager struct {
	repo     ErrorRepository
	logger   *slog.Logger
	defaults []Option

	mu    sync.Mutex
	forms map[string]*Form
}

// ManagerOption is a functional option for configuring the Manager
type ManagerOption func(*Manager)

// WithManagerLogger sets the logger passed to every form. Nil loggers are ignored.
func WithManagerLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithDefaults sets form options applied before the ones given to Open
func WithDefaults(opts ...Option) ManagerOption {
	return func(m *Manager) {
		m.defaults = append(m.defaults, opts...)
	}
}

// NewManager creates a manager backed by repo.
func NewManager(repo ErrorRepository, opts ...ManagerOption) (*Manager, error) {
	if repo == nil {
		return nil, ErrNilRepository
	}

	m := &Manager{
		repo:   repo,
		logger: newNoopLogger(),
		forms:  make(map[string]*Form),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// NewFormID returns a random id suitable for Open
func NewFormID() string {
	return uuid.NewString()
}

// Open creates a form owning formID. It fails with ErrFormIDInUse while
// another form opened here still owns the id. Disposing the form frees it.
func (m *Manager) Open(formID string, opts ...Option) (*Form, error) {
	if formID == "" {
		return nil, ErrEmptyFormID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.forms[formID]; exists {
		return nil, fmt.Errorf("%w: %q", ErrFormIDInUse, formID)
	}

	all := make([]Option, 0, len(m.defaults)+len(opts)+2)
	all = append(all, WithLogger(m.logger))
	all = append(all, m.defaults...)
	all = append(all, opts...)

	var f *Form
	all = append(all, withReleaser(func() { m.release(formID, f) }))
	f = New(m.repo, formID, all...)

	m.forms[formID] = f
	m.logger.Debug("form opened", logger.FormID(formID))
	return f, nil
}

// Get returns the live form owning formID
func (m *Manager) Get(formID string) (*Form, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.forms[formID]
	return f, ok
}

// FormIDs returns the ids of live forms in sorted order
func (m *Manager) FormIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Sorted(maps.Keys(m.forms))
}

func (m *Manager) release(formID string, f *Form) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.forms[formID] == f {
		delete(m.forms, formID)
	}
}

// Close disposes every live form
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	forms := slices.Collect(maps.Values(m.forms))
	m.mu.Unlock()

	var errs []error
	for _, f := range forms {
		if err := f.Dispose(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
