// Package config loads passgen's startup settings.
//
// Configuration is organised in sections (generator, clipboard, logging),
// each decoding its own keys from a YAML file and validating itself. Values
// only seed a new session; nothing is written back.
package config

import (
	"fmt"
	"sort"
	"sync"
)

// Section is one named block of configuration.
type Section interface {
	ID() string
	Title() string
	Description() string
	Data() map[string]interface{}
	SetData(data map[string]interface{}) error
	Validate() error
	Reset()
}

// Manager owns the registered sections and the store they load from.
type Manager struct {
	store    Store
	sections map[string]Section
	mu       sync.RWMutex
}

// NewManager creates a manager backed by store.
func NewManager(store Store) *Manager {
	return &Manager{
		store:    store,
		sections: make(map[string]Section),
	}
}

// Store returns the underlying store.
func (m *Manager) Store() Store {
	return m.store
}

// RegisterSection adds a section. IDs must be unique.
func (m *Manager) RegisterSection(section Section) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sections[section.ID()]; exists {
		return fmt.Errorf("section %q already registered", section.ID())
	}
	m.sections[section.ID()] = section
	return nil
}

// GetSection looks up a registered section.
func (m *Manager) GetSection(id string) (Section, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	section, ok := m.sections[id]
	return section, ok
}

// GetSections returns all sections ordered by ID.
func (m *Manager) GetSections() []Section {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sections := make([]Section, 0, len(m.sections))
	for _, s := range m.sections {
		sections = append(sections, s)
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].ID() < sections[j].ID() })
	return sections
}

// LoadAll pushes store data into every section and validates it.
func (m *Manager) LoadAll() error {
	for _, section := range m.GetSections() {
		data, err := m.store.GetSection(section.ID())
		if err != nil {
			return fmt.Errorf("failed to read section %s: %w", section.ID(), err)
		}
		if err := section.SetData(data); err != nil {
			return fmt.Errorf("invalid %s configuration: %w", section.ID(), err)
		}
		if err := section.Validate(); err != nil {
			return fmt.Errorf("invalid %s configuration: %w", section.ID(), err)
		}
	}
	return nil
}

// Config is the resolved startup configuration.
type Config struct {
	Generator *GeneratorSection
	Clipboard *ClipboardSection
	Logging   *LoggingSection

	manager *Manager
}

// Load reads path (DefaultPath when empty) and returns validated settings.
// A missing file yields defaults.
func Load(path string) (*Config, error) {
	store, err := NewFileStore(path)
	if err != nil {
		return nil, err
	}
	return FromStore(store)
}

// FromStore registers the default sections and loads them from store.
func FromStore(store Store) (*Config, error) {
	cfg := &Config{
		Generator: NewGeneratorSection(),
		Clipboard: NewClipboardSection(),
		Logging:   NewLoggingSection(),
		manager:   NewManager(store),
	}

	for _, section := range []Section{cfg.Generator, cfg.Clipboard, cfg.Logging} {
		if err := cfg.manager.RegisterSection(section); err != nil {
			return nil, err
		}
	}

	if err := cfg.manager.LoadAll(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the built-in settings without reading any file.
func Default() *Config {
	return &Config{
		Generator: NewGeneratorSection(),
		Clipboard: NewClipboardSection(),
		Logging:   NewLoggingSection(),
	}
}

// Manager returns the manager used to load cfg, nil for Default.
func (c *Config) Manager() *Manager {
	return c.manager
}
