package config

import (
	"fmt"
	"sync"

	"github.com/entrhq/passgen/pkg/generator"
)

const (
	// SectionIDGenerator is the identifier for the generator defaults section
	SectionIDGenerator = "generator"
)

// GeneratorSection holds the settings a new session starts with.
type GeneratorSection struct {
	Length  int
	Digits  bool
	Special bool
	mu      sync.RWMutex
}

// NewGeneratorSection creates a section with the widget defaults.
func NewGeneratorSection() *GeneratorSection {
	return &GeneratorSection{Length: generator.DefaultLength}
}

// ID returns the section identifier.
func (s *GeneratorSection) ID() string {
	return SectionIDGenerator
}

// Title returns the section title.
func (s *GeneratorSection) Title() string {
	return "Generator Defaults"
}

// Description returns the section description.
func (s *GeneratorSection) Description() string {
	return "Initial password length and character groups used when passgen starts."
}

// Data returns the current configuration data.
func (s *GeneratorSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]interface{}{
		"length":  s.Length,
		"digits":  s.Digits,
		"special": s.Special,
	}
}

// SetData updates the configuration from the provided data.
func (s *GeneratorSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		switch key {
		case "length":
			n, err := toInt(value)
			if err != nil {
				return fmt.Errorf("invalid value for length: %w", err)
			}
			s.Length = n

		case "digits":
			b, ok := value.(bool)
			if !ok {
				return fmt.Errorf("invalid value type for digits: expected bool, got %T", value)
			}
			s.Digits = b

		case "special":
			b, ok := value.(bool)
			if !ok {
				return fmt.Errorf("invalid value type for special: expected bool, got %T", value)
			}
			s.Special = b

		default:
			// Ignore unknown keys for forward compatibility
			continue
		}
	}

	return nil
}

// Validate checks the length is within the slider range.
func (s *GeneratorSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.Length < generator.MinLength || s.Length > generator.MaxLength {
		return fmt.Errorf("length must be between %d and %d, got %d",
			generator.MinLength, generator.MaxLength, s.Length)
	}
	return nil
}

// Reset restores the widget defaults.
func (s *GeneratorSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Length = generator.DefaultLength
	s.Digits = false
	s.Special = false
}

// Options converts the section into generator options.
func (s *GeneratorSection) Options() generator.Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return generator.Options{Length: s.Length, Digits: s.Digits, Special: s.Special}
}

// toInt accepts the numeric types YAML and JSON decoders produce.
func toInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected whole number, got %v", v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", value)
	}
}
