package config

import (
	"fmt"
	"sync"
)

const (
	// SectionIDClipboard is the identifier for the clipboard section
	SectionIDClipboard = "clipboard"

	defaultTTY = "/dev/tty"
)

// ClipboardMode selects which copy mechanisms are used.
type ClipboardMode string

const (
	// ClipboardAuto tries the system clipboard, then the terminal fallback.
	ClipboardAuto ClipboardMode = "auto"
	// ClipboardSystem uses only the system clipboard.
	ClipboardSystem ClipboardMode = "system"
	// ClipboardTerminal uses only the terminal (OSC 52) copy.
	ClipboardTerminal ClipboardMode = "terminal"
)

// ClipboardSection configures the copy action.
type ClipboardSection struct {
	Mode ClipboardMode
	TTY  string
	mu   sync.RWMutex
}

// NewClipboardSection creates a section with automatic mode.
func NewClipboardSection() *ClipboardSection {
	return &ClipboardSection{Mode: ClipboardAuto, TTY: defaultTTY}
}

// ID returns the section identifier.
func (s *ClipboardSection) ID() string {
	return SectionIDClipboard
}

// Title returns the section title.
func (s *ClipboardSection) Title() string {
	return "Clipboard"
}

// Description returns the section description.
func (s *ClipboardSection) Description() string {
	return "Choose the copy mechanism (auto, system, terminal) and the terminal device used for OSC 52 copies."
}

// Data returns the current configuration data.
func (s *ClipboardSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]interface{}{
		"mode": string(s.Mode),
		"tty":  s.TTY,
	}
}

// SetData updates the configuration from the provided data.
func (s *ClipboardSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		str, ok := value.(string)
		switch key {
		case "mode":
			if !ok {
				return fmt.Errorf("invalid value type for mode: expected string, got %T", value)
			}
			s.Mode = ClipboardMode(str)
		case "tty":
			if !ok {
				return fmt.Errorf("invalid value type for tty: expected string, got %T", value)
			}
			s.TTY = str
		}
	}

	return nil
}

// Validate validates the current configuration.
func (s *ClipboardSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch s.Mode {
	case ClipboardAuto, ClipboardSystem, ClipboardTerminal:
	default:
		return fmt.Errorf("mode must be auto, system or terminal, got %q", s.Mode)
	}

	if s.Mode != ClipboardSystem && s.TTY == "" {
		return fmt.Errorf("tty is required when the terminal fallback is enabled")
	}
	return nil
}

// Reset resets the section to default configuration.
func (s *ClipboardSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Mode = ClipboardAuto
	s.TTY = defaultTTY
}

// UseSystem reports whether the system clipboard should be tried.
func (s *ClipboardSection) UseSystem() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Mode != ClipboardTerminal
}

// UseTerminal reports whether the OSC 52 fallback should be used.
func (s *ClipboardSection) UseTerminal() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Mode != ClipboardSystem
}
