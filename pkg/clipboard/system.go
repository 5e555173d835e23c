package clipboard

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
)

// SystemClipboard writes through the platform clipboard utilities
// (pbcopy, xclip/xsel/wl-copy, the Windows clipboard API).
type SystemClipboard struct {
	write       func(string) error
	unsupported func() bool
}

// NewSystemClipboard returns the platform clipboard.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{
		write:       clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// Available reports whether a clipboard utility was found at startup.
func (s *SystemClipboard) Available() bool {
	return !s.unsupported()
}

// WriteText places text on the clipboard. The utility runs in the background
// so a cancelled ctx returns promptly even if the utility hangs.
func (s *SystemClipboard) WriteText(ctx context.Context, text string) error {
	done := make(chan error, 1)
	go func() {
		done <- s.write(text)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("system clipboard write failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("system clipboard write abandoned: %w", ctx.Err())
	}
}

var _ Primary = (*SystemClipboard)(nil)
