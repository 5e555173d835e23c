package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// DefaultTTY is the device the terminal fallback writes to.
const DefaultTTY = "/dev/tty"

// TerminalFallback asks the terminal emulator to set the clipboard with an
// OSC 52 escape sequence. The terminal device is opened for the single write
// and closed on every exit path.
type TerminalFallback struct {
	open   func() (io.WriteCloser, error)
	getenv func(string) string
}

// TerminalOption configures a TerminalFallback.
type TerminalOption func(*TerminalFallback)

// WithTTY writes to the named device instead of DefaultTTY.
func WithTTY(path string) TerminalOption {
	return func(t *TerminalFallback) {
		t.open = func() (io.WriteCloser, error) {
			return os.OpenFile(path, os.O_WRONLY, 0)
		}
	}
}

// WithOpener supplies the device directly.
func WithOpener(open func() (io.WriteCloser, error)) TerminalOption {
	return func(t *TerminalFallback) { t.open = open }
}

// WithEnv replaces os.Getenv for multiplexer detection.
func WithEnv(getenv func(string) string) TerminalOption {
	return func(t *TerminalFallback) { t.getenv = getenv }
}

// NewTerminalFallback returns a fallback writing to DefaultTTY.
func NewTerminalFallback(opts ...TerminalOption) *TerminalFallback {
	t := &TerminalFallback{getenv: os.Getenv}
	WithTTY(DefaultTTY)(t)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Sequence builds the OSC 52 sequence for text, wrapped for tmux or screen
// when running inside one.
func (t *TerminalFallback) Sequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	switch {
	case t.getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(t.getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	return seq
}

// Copy writes the sequence to the terminal. ok is false when nothing could
// be written; err is set when the device could not be used.
func (t *TerminalFallback) Copy(text string) (ok bool, err error) {
	dev, err := t.open()
	if err != nil {
		return false, fmt.Errorf("failed to open terminal: %w", err)
	}
	defer func() {
		if cerr := dev.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close terminal: %w", cerr)
		}
	}()

	n, err := t.Sequence(text).WriteTo(dev)
	if err != nil {
		return false, fmt.Errorf("failed to write copy sequence: %w", err)
	}
	return n > 0, nil
}

var _ Fallback = (*TerminalFallback)(nil)
