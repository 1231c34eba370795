package host

import (
	"context"
	"encoding/json"
	"sync"
)

// MemorySettings is a SettingsStore kept in a map.
type MemorySettings struct {
	mu     sync.Mutex
	values map[string]json.RawMessage
}

// NewMemorySettings creates an empty MemorySettings.
func NewMemorySettings() *MemorySettings {
	return &MemorySettings{values: make(map[string]json.RawMessage)}
}

// Get implements SettingsStore.
func (m *MemorySettings) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements SettingsStore.
func (m *MemorySettings) Set(_ context.Context, key string, value json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append(json.RawMessage(nil), value...)
	return nil
}
