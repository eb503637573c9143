package form

import (
	"context"
	"maps"
	"sync"
)

// MemoryRepository implements ErrorRepository using in-memory storage
type MemoryRepository struct {
	mu      sync.RWMutex
	buckets map[string]map[string]string
}

// NewMemoryRepository creates an empty in-memory error repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		buckets: make(map[string]map[string]string),
	}
}

func (m *MemoryRepository) Get(ctx context.Context, formID, field string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	msg, ok := m.buckets[formID][field]
	return msg, ok, nil
}

func (m *MemoryRepository) Set(ctx context.Context, formID, field, message string) error {
	if formID == "" {
		return ErrEmptyFormID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	bucket, ok := m.buckets[formID]
	if !ok {
		bucket = make(map[string]string)
		m.buckets[formID] = bucket
	}
	bucket[field] = message
	return nil
}

// Delete removes the entry and drops the bucket once it is empty
func (m *MemoryRepository) Delete(ctx context.Context, formID, field string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bucket, ok := m.buckets[formID]
	if !ok {
		return nil
	}
	delete(bucket, field)
	if len(bucket) == 0 {
		delete(m.buckets, formID)
	}
	return nil
}

func (m *MemoryRepository) All(ctx context.Context, formID string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.buckets[formID]))
	maps.Copy(out, m.buckets[formID])
	return out, nil
}

func (m *MemoryRepository) Clear(ctx context.Context, formID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.buckets, formID)
	return nil
}

// Len reports how many form buckets are held
func (m *MemoryRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.buckets)
}
