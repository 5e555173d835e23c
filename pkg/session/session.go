// Package session holds the generator widget's mutable state: the three
// settings and the password derived from them.
//
// Every setter regenerates the password before returning, so Password never
// reflects settings other than the current ones.
package session

import (
	"github.com/entrhq/passgen/pkg/generator"
)

// Session is owned by a single UI instance and is not safe for concurrent use.
type Session struct {
	opts     generator.Options
	src      generator.Source
	password string
	selected bool
}

// New creates a session with the given starting options and generates the
// initial password. A nil src uses generator.DefaultSource.
func New(opts generator.Options, src generator.Source) *Session {
	if src == nil {
		src = generator.DefaultSource()
	}
	opts.Length = generator.ClampLength(opts.Length)

	s := &Session{opts: opts, src: src}
	s.regenerate()
	return s
}

// Options returns the current settings.
func (s *Session) Options() generator.Options { return s.opts }

// Length returns the current password length.
func (s *Session) Length() int { return s.opts.Length }

// AllowDigits reports whether digits are part of the alphabet.
func (s *Session) AllowDigits() bool { return s.opts.Digits }

// AllowSpecial reports whether special characters are part of the alphabet.
func (s *Session) AllowSpecial() bool { return s.opts.Special }

// Password returns the password generated for the current settings.
func (s *Session) Password() string { return s.password }

// Selected reports whether the password field is highlighted after a copy.
func (s *Session) Selected() bool { return s.selected }

// SetLength sets the length, clamped to the slider range, and regenerates.
func (s *Session) SetLength(n int) {
	s.opts.Length = generator.ClampLength(n)
	s.regenerate()
}

// Step moves the length by delta and regenerates.
func (s *Session) Step(delta int) {
	s.SetLength(s.opts.Length + delta)
}

// SetAllowDigits sets the digits toggle and regenerates.
func (s *Session) SetAllowDigits(allow bool) {
	s.opts.Digits = allow
	s.regenerate()
}

// SetAllowSpecial sets the special characters toggle and regenerates.
func (s *Session) SetAllowSpecial(allow bool) {
	s.opts.Special = allow
	s.regenerate()
}

// ToggleDigits flips the digits toggle and regenerates.
func (s *Session) ToggleDigits() {
	s.SetAllowDigits(!s.opts.Digits)
}

// ToggleSpecial flips the special characters toggle and regenerates.
func (s *Session) ToggleSpecial() {
	s.SetAllowSpecial(!s.opts.Special)
}

// Select highlights the password field.
func (s *Session) Select() {
	s.selected = true
}

// regenerate derives a fresh password; a new value is never shown selected.
func (s *Session) regenerate() {
	s.password = generator.Generate(s.opts, s.src)
	s.selected = false
}
