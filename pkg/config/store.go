package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store provides read access to configuration data. passgen never writes
// configuration back; settings changed in the UI live only for the session.
type Store interface {
	// Load reads the configuration from its source
	Load() error

	// GetSection retrieves configuration data for a specific section
	GetSection(sectionID string) (map[string]interface{}, error)
}

// FileStore implements Store using a YAML file.
type FileStore struct {
	path   string
	data   map[string]map[string]interface{}
	mu     sync.RWMutex
	exists bool
}

// DefaultPath returns the config path: $PASSGEN_CONFIG if set, otherwise
// ~/.config/passgen/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv("PASSGEN_CONFIG"); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "passgen", "config.yaml"), nil
}

// NewFileStore creates a file-based store and loads it.
// If path is empty, DefaultPath is used. A missing file is not an error.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	store := &FileStore{
		path: path,
		data: make(map[string]map[string]interface{}),
	}

	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	return store, nil
}

// Load reads the YAML file. A missing file yields an empty configuration.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.data = make(map[string]map[string]interface{})
			s.exists = false
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var sections map[string]map[string]interface{}
	if err := yaml.Unmarshal(raw, &sections); err != nil {
		return fmt.Errorf("failed to decode config file: %w", err)
	}

	if sections == nil {
		sections = make(map[string]map[string]interface{})
	}
	s.data = sections
	s.exists = true

	return nil
}

// GetSection retrieves configuration data for a specific section.
func (s *FileStore) GetSection(sectionID string) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if data, exists := s.data[sectionID]; exists {
		// Return a copy to prevent external modification
		dataCopy := make(map[string]interface{}, len(data))
		for k, v := range data {
			dataCopy[k] = v
		}
		return dataCopy, nil
	}

	return make(map[string]interface{}), nil
}

// Exists reports whether the last Load found a file.
func (s *FileStore) Exists() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exists
}

// Path returns the file path of the store.
func (s *FileStore) Path() string {
	return s.path
}
