package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikbrunner/feed/internal/host"
	"github.com/nikbrunner/feed/internal/model"
)

// Storage defines the interface for persisting the bookmark tree.
type Storage interface {
	Load() (*model.Store, error)
	Save(store *model.Store) error
}

// JSONStorage implements Storage using a JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads the store from the JSON file.
// Returns a freshly seeded store if the file doesn't exist.
func (s *JSONStorage) Load() (*model.Store, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewStore(), nil
		}
		return nil, err
	}

	var store model.Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	if store.Nodes == nil {
		store.Nodes = []model.Node{}
	}
	store.EnsureBuiltins()

	return &store, nil
}

// Save writes the store to the JSON file.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(store *model.Store) error {
	return writeJSON(s.path, store)
}

// writeJSON marshals v with indentation and writes it to path, creating the
// parent directory first.
func writeJSON(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultDir returns the default data directory: ~/.config/feed
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "feed"), nil
}

// DefaultJSONPath returns the default JSON tree path: ~/.config/feed/bookmarks.json
func DefaultJSONPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "bookmarks.json"), nil
}

// Backend pairs a tree storage with the settings store persisted next to it.
type Backend struct {
	Storage  Storage
	Settings host.SettingsStore
	close    func() error
}

// Close releases the backend's resources.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Open opens the backend named by cfg.Backend inside dir.
// "sqlite" keeps tree and settings in one database; "json" uses two files.
func Open(cfg *Config, dir string) (*Backend, error) {
	switch cfg.Backend {
	case BackendJSON:
		return &Backend{
			Storage:  NewJSONStorage(filepath.Join(dir, "bookmarks.json")),
			Settings: NewSettingsFile(filepath.Join(dir, "settings.json")),
		}, nil
	case BackendSQLite, "":
		db, err := NewSQLiteStorage(filepath.Join(dir, "bookmarks.db"))
		if err != nil {
			return nil, err
		}
		return &Backend{Storage: db, Settings: db, close: db.Close}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
