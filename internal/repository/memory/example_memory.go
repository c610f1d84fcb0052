package memory

import (
	"context"
	"sync"

	"exampleapi/internal/model"
	"exampleapi/internal/repository"
)

// ExampleMemory is a process-lifetime implementation of
// repository.ExampleRepository. Records keep insertion order and are copied on
// the way in and out, so callers never share state with the store.
type ExampleMemory struct {
	mu    sync.RWMutex
	items []model.Example
}

// NewExampleMemory returns a store holding a copy of seed.
func NewExampleMemory(seed []model.Example) *ExampleMemory {
	items := make([]model.Example, len(seed))
	copy(items, seed)
	return &ExampleMemory{items: items}
}

var _ repository.ExampleRepository = (*ExampleMemory)(nil)

// List returns a snapshot of all examples.
func (m *ExampleMemory) List(ctx context.Context) ([]model.Example, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Example, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *ExampleMemory) FindByID(ctx context.Context, id int) (*model.Example, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	e := m.items[i]
	return &e, nil
}

func (m *ExampleMemory) Create(ctx context.Context, e *model.Example) (*model.Example, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := *e
	out.ID = m.nextID()
	m.items = append(m.items, out)
	return &out, nil
}

// Update merges changes while holding the write lock.
func (m *ExampleMemory) Update(ctx context.Context, id int, changes model.UpdateExampleDto) (*model.Example, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	changes.Apply(&m.items[i])
	out := m.items[i]
	return &out, nil
}

func (m *ExampleMemory) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	return nil
}

// indexOf expects the caller to hold mu.
func (m *ExampleMemory) indexOf(id int) int {
	for i := range m.items {
		if m.items[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID expects the caller to hold mu.
func (m *ExampleMemory) nextID() int {
	next := 0
	for _, it := range m.items {
		if it.ID >= next {
			next = it.ID + 1
		}
	}
	return next
}
