// Package clipboard copies text to the clipboard on a best-effort basis.
//
// A Writer first tries the system clipboard. When that is unavailable or
// rejects the write, it falls back to a synchronous terminal copy (an OSC 52
// escape sequence written to the controlling terminal). Failures are logged
// and reported as an Outcome; Copy never returns an error and never panics.
package clipboard

import (
	"context"
	"fmt"

	"github.com/entrhq/passgen/pkg/logging"
)

// Outcome describes how a copy attempt ended.
type Outcome int

const (
	// Failed means neither mechanism placed the text on the clipboard.
	Failed Outcome = iota
	// CopiedPrimary means the system clipboard accepted the text.
	CopiedPrimary
	// CopiedFallback means the terminal copy command reported success.
	CopiedFallback
	// FallbackUnsuccessful means the terminal copy ran but reported failure.
	FallbackUnsuccessful
)

func (o Outcome) String() string {
	switch o {
	case CopiedPrimary:
		return "copied"
	case CopiedFallback:
		return "copied-fallback"
	case FallbackUnsuccessful:
		return "fallback-unsuccessful"
	default:
		return "failed"
	}
}

// Primary is the preferred clipboard mechanism.
type Primary interface {
	// Available reports whether the mechanism can be used in this environment.
	Available() bool
	// WriteText places text on the clipboard.
	WriteText(ctx context.Context, text string) error
}

// Fallback is the legacy synchronous copy mechanism. ok reports whether the
// copy command claimed success; err is set when it could not run at all.
type Fallback interface {
	Copy(text string) (ok bool, err error)
}

// Writer copies text using a Primary with a Fallback behind it.
type Writer struct {
	primary  Primary
	fallback Fallback
	logger   *logging.Logger
}

// Option configures a Writer.
type Option func(*Writer)

// WithPrimary replaces the system clipboard. A nil Primary disables it.
func WithPrimary(p Primary) Option {
	return func(w *Writer) { w.primary = p }
}

// WithFallback replaces the terminal fallback. A nil Fallback disables it.
func WithFallback(f Fallback) Option {
	return func(w *Writer) { w.fallback = f }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *logging.Logger) Option {
	return func(w *Writer) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWriter returns a Writer using the system clipboard and the terminal
// fallback unless overridden.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{
		primary:  NewSystemClipboard(),
		fallback: NewTerminalFallback(),
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Copy places text on the clipboard, trying the primary mechanism first and
// the fallback when the primary is missing or fails.
func (w *Writer) Copy(ctx context.Context, text string) Outcome {
	if w.primary != nil && w.available() {
		err := guard(func() error { return w.primary.WriteText(ctx, text) })
		if err == nil {
			w.logger.Debugf("copied %d characters to system clipboard", len(text))
			return CopiedPrimary
		}
		w.logger.Errorf("failed to copy: %v", err)
	} else {
		w.logger.Debugf("system clipboard unavailable, using fallback")
	}

	return w.copyFallback(text)
}

// available asks the primary whether it can run, treating a panic as no.
func (w *Writer) available() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Errorf("system clipboard availability check panicked: %v", r)
			ok = false
		}
	}()
	return w.primary.Available()
}

func (w *Writer) copyFallback(text string) Outcome {
	if w.fallback == nil {
		w.logger.Warnf("fallback: no fallback copy mechanism configured")
		return Failed
	}

	var ok bool
	err := guard(func() error {
		var ferr error
		ok, ferr = w.fallback.Copy(text)
		return ferr
	})
	if err != nil {
		w.logger.Errorf("fallback: unable to copy: %v", err)
		return Failed
	}

	if ok {
		w.logger.Infof("fallback: copying text command was successful")
		return CopiedFallback
	}
	w.logger.Warnf("fallback: copying text command was unsuccessful")
	return FallbackUnsuccessful
}

// guard runs fn and converts a panic into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
