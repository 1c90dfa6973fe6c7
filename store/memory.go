package store

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-process RecordStore used in dev mode and tests. It
// preserves insertion order within a collection so list responses are stable.
type MemoryStore struct {
	mu    sync.Mutex
	data  map[string]map[string]map[string]interface{}
	order map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:  make(map[string]map[string]map[string]interface{}),
		order: make(map[string][]string),
	}
}

func (m *MemoryStore) FetchAll(_ context.Context, collection string) ([]Doc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	docs := make([]Doc, 0, len(m.order[collection]))
	for _, id := range m.order[collection] {
		docs = append(docs, Doc{ID: id, Data: copyData(m.data[collection][id])})
	}
	return docs, nil
}

func (m *MemoryStore) Get(_ context.Context, collection, id string) (Doc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[collection][id]
	if !ok {
		return Doc{}, fmt.Errorf("document %s/%s: %w", collection, id, ErrNotFound)
	}
	return Doc{ID: id, Data: copyData(data)}, nil
}

func (m *MemoryStore) Create(_ context.Context, collection, id string, data map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[collection] == nil {
		m.data[collection] = make(map[string]map[string]interface{})
	}
	if _, exists := m.data[collection][id]; exists {
		return fmt.Errorf("document %s/%s already exists", collection, id)
	}
	m.data[collection][id] = copyData(data)
	m.order[collection] = append(m.order[collection], id)
	return nil
}

func (m *MemoryStore) Update(_ context.Context, collection, id string, data map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.data[collection][id]
	if !ok {
		return fmt.Errorf("document %s/%s: %w", collection, id, ErrNotFound)
	}
	for k, v := range data {
		existing[k] = v
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[collection][id]; !ok {
		return fmt.Errorf("document %s/%s: %w", collection, id, ErrNotFound)
	}
	m.remove(collection, id)
	return nil
}

func (m *MemoryStore) BatchDelete(_ context.Context, collection string, ids []string) ([]string, []string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted, failed []string
	for _, id := range ids {
		if _, ok := m.data[collection][id]; !ok {
			failed = append(failed, id)
			continue
		}
		m.remove(collection, id)
		deleted = append(deleted, id)
	}
	return deleted, failed, nil
}

// remove expects the lock to be held.
func (m *MemoryStore) remove(collection, id string) {
	delete(m.data[collection], id)
	order := m.order[collection]
	for i, existing := range order {
		if existing == id {
			m.order[collection] = append(order[:i], order[i+1:]...)
			break
		}
	}
}

func copyData(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
