// Package storage provides an in-memory implementation of the container
// Storage contract for tests, examples, and hosts without a persistence
// layer of their own.
package storage

import (
	"context"
	"sync"
)

type memoryKey struct {
	entityID  string
	fieldName string
}

// Memory is a mutex-guarded in-memory value store. The zero value is ready to
// use.
type Memory struct {
	mu     sync.RWMutex
	values map[memoryKey]string
}

// NewMemory constructs an empty store.
func NewMemory() *Memory {
	return &Memory{values: make(map[memoryKey]string)}
}

// ReadValue returns the stored value, "" when unset. It never errors.
func (m *Memory) ReadValue(_ context.Context, entityID, fieldName string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.values[memoryKey{entityID: entityID, fieldName: fieldName}], nil
}

// WriteValue stores value under (entityID, fieldName).
func (m *Memory) WriteValue(_ context.Context, entityID, fieldName, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.values == nil {
		m.values = make(map[memoryKey]string)
	}
	m.values[memoryKey{entityID: entityID, fieldName: fieldName}] = value
	return nil
}

// Len returns the number of stored values.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.values)
}

// Snapshot copies the store into a flat map keyed "entityID/fieldName",
// mainly for test assertions.
func (m *Memory) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.values))
	for key, value := range m.values {
		out[key.entityID+"/"+key.fieldName] = value
	}
	return out
}
