package storage

import (
	"sync"

	"opentrip/internal/domain"
)

// Memory is the default in-process store. It replaces the original
// process-wide maps with an injectable value so services can be tested
// against a fresh instance.
type Memory[E any] struct {
	resource string

	mu    sync.RWMutex
	items map[string]E
}

func NewMemory[E any](resource string) *Memory[E] {
	return &Memory[E]{
		resource: resource,
		items:    make(map[string]E),
	}
}

func (m *Memory[E]) Save(id string, entity E) error {
	if id == "" {
		return domain.ValidationError{Field: "id", Msg: "must not be empty"}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id] = entity
	return nil
}

func (m *Memory[E]) Get(id string) (E, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entity, ok := m.items[id]
	if !ok {
		var zero E
		return zero, domain.NotFoundError{Resource: m.resource, ID: id}
	}
	return entity, nil
}

func (m *Memory[E]) List() ([]E, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]E, 0, len(m.items))
	for _, entity := range m.items {
		out = append(out, entity)
	}
	return out, nil
}

func (m *Memory[E]) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return domain.NotFoundError{Resource: m.resource, ID: id}
	}
	delete(m.items, id)
	return nil
}
