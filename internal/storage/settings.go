package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// SettingsFile implements host.SettingsStore on top of a single JSON object file.
type SettingsFile struct {
	path string
	mu   sync.Mutex
}

// NewSettingsFile creates a SettingsFile backed by path.
func NewSettingsFile(path string) *SettingsFile {
	return &SettingsFile{path: path}
}

// Path returns the settings file path.
func (s *SettingsFile) Path() string {
	return s.path
}

// Get returns the raw value stored under key.
func (s *SettingsFile) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return nil, false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set stores value under key, rewriting the whole file.
func (s *SettingsFile) Set(_ context.Context, key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return err
	}
	values[key] = value
	return writeJSON(s.path, values)
}

func (s *SettingsFile) read() (map[string]json.RawMessage, error) {
	values := map[string]json.RawMessage{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return values, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return values, nil
}
