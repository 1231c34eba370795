package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikbrunner/feed/internal/model"
)

// Storage backends selectable in Config.Backend.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

// Config holds application configuration.
type Config struct {
	RootFolder     string `json:"rootFolder"`
	ParentFolderID string `json:"parentFolderId"`
	ProfileMin     int    `json:"profileMin"`
	ProfileMax     int    `json:"profileMax"`
	DefaultProfile string `json:"defaultProfile"`
	Backend        string `json:"backend"`
	BrowserURL     string `json:"browserUrl"` // DevTools websocket; empty = static tab
	LogFile        string `json:"logFile"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		RootFolder:     "Website Feed",
		ParentFolderID: model.UnfiledID,
		ProfileMin:     1,
		ProfileMax:     4,
		DefaultProfile: "1",
		Backend:        BackendSQLite,
	}
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = SaveConfig(path, &config)
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.RootFolder == "" {
		config.RootFolder = defaults.RootFolder
	}
	if config.ParentFolderID == "" {
		config.ParentFolderID = defaults.ParentFolderID
	}
	if config.ProfileMin == 0 && config.ProfileMax == 0 {
		config.ProfileMin = defaults.ProfileMin
		config.ProfileMax = defaults.ProfileMax
	}
	if config.ProfileMax < config.ProfileMin {
		return nil, fmt.Errorf("config: profileMax %d below profileMin %d", config.ProfileMax, config.ProfileMin)
	}
	if config.DefaultProfile == "" {
		config.DefaultProfile = defaults.DefaultProfile
	}
	if config.Backend == "" {
		config.Backend = defaults.Backend
	}

	return &config, nil
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	return writeJSON(path, config)
}

// DefaultConfigFilePath returns the default config path: ~/.config/feed/config.json
func DefaultConfigFilePath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
