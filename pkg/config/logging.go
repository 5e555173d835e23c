package config

import (
	"fmt"
	"sync"

	"github.com/entrhq/passgen/pkg/logging"
)

const (
	// SectionIDLogging is the identifier for the logging section
	SectionIDLogging = "logging"
)

// LoggingSection controls diagnostics output.
type LoggingSection struct {
	// Verbosity is quiet, normal or debug.
	Verbosity string
	// Dir overrides the log directory; empty means ~/.passgen/logs.
	Dir string
	mu  sync.RWMutex
}

// NewLoggingSection creates a section with normal verbosity.
func NewLoggingSection() *LoggingSection {
	return &LoggingSection{Verbosity: "normal"}
}

// ID returns the section identifier.
func (s *LoggingSection) ID() string {
	return SectionIDLogging
}

// Title returns the section title.
func (s *LoggingSection) Title() string {
	return "Logging"
}

// Description returns the section description.
func (s *LoggingSection) Description() string {
	return "Log verbosity (quiet, normal, debug) and an optional log directory."
}

// Data returns the current configuration data.
func (s *LoggingSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]interface{}{
		"verbosity": s.Verbosity,
		"dir":       s.Dir,
	}
}

// SetData updates the configuration from the provided data.
func (s *LoggingSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		str, ok := value.(string)
		switch key {
		case "verbosity":
			if !ok {
				return fmt.Errorf("invalid value type for verbosity: expected string, got %T", value)
			}
			s.Verbosity = str
		case "dir":
			if !ok {
				return fmt.Errorf("invalid value type for dir: expected string, got %T", value)
			}
			s.Dir = str
		}
	}

	return nil
}

// Validate validates the current configuration.
func (s *LoggingSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, err := logging.ParseVerbosity(s.Verbosity)
	return err
}

// Reset resets the section to default configuration.
func (s *LoggingSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Verbosity = "normal"
	s.Dir = ""
}

// Options converts the section into logger options.
func (s *LoggingSection) Options() logging.Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	level, _ := logging.ParseVerbosity(s.Verbosity)
	return logging.Options{Dir: s.Dir, Level: level}
}
