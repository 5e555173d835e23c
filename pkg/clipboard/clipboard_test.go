package clipboard

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/entrhq/passgen/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPrimary struct {
	available bool
	err       error
	panicMsg  string
	written   []string
}

func (m *mockPrimary) Available() bool { return m.available }

func (m *mockPrimary) WriteText(ctx context.Context, text string) error {
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	if m.err != nil {
		return m.err
	}
	m.written = append(m.written, text)
	return nil
}

type mockFallback struct {
	ok       bool
	err      error
	panicMsg string
	calls    []string
}

func (m *mockFallback) Copy(text string) (bool, error) {
	m.calls = append(m.calls, text)
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	return m.ok, m.err
}

func newTestWriter(p Primary, f Fallback) (*Writer, *bytes.Buffer) {
	var buf bytes.Buffer
	w := NewWriter(
		WithPrimary(p),
		WithFallback(f),
		WithLogger(logging.New("clipboard", &buf, logging.LevelDebug)),
	)
	return w, &buf
}

func TestCopy_PrimarySucceeds(t *testing.T) {
	primary := &mockPrimary{available: true}
	fallback := &mockFallback{ok: true}
	w, _ := newTestWriter(primary, fallback)

	outcome := w.Copy(context.Background(), "Ab3!xQ")

	assert.Equal(t, CopiedPrimary, outcome)
	assert.Equal(t, []string{"Ab3!xQ"}, primary.written)
	assert.Empty(t, fallback.calls)
}

func TestCopy_PrimaryRejectedFallsBack(t *testing.T) {
	primary := &mockPrimary{available: true, err: errors.New("permission denied")}
	fallback := &mockFallback{ok: true}
	w, logs := newTestWriter(primary, fallback)

	outcome := w.Copy(context.Background(), "Ab3!xQ")

	assert.Equal(t, CopiedFallback, outcome)
	assert.Equal(t, []string{"Ab3!xQ"}, fallback.calls)
	assert.Contains(t, logs.String(), "failed to copy: permission denied")
	assert.Contains(t, logs.String(), "copying text command was successful")
}

func TestCopy_PrimaryUnavailable(t *testing.T) {
	primary := &mockPrimary{available: false}
	fallback := &mockFallback{ok: true}
	w, _ := newTestWriter(primary, fallback)

	outcome := w.Copy(context.Background(), "secret")

	assert.Equal(t, CopiedFallback, outcome)
	assert.Empty(t, primary.written)
	assert.Equal(t, []string{"secret"}, fallback.calls)
}

func TestCopy_NoPrimary(t *testing.T) {
	fallback := &mockFallback{ok: true}
	w, _ := newTestWriter(nil, fallback)

	assert.Equal(t, CopiedFallback, w.Copy(context.Background(), "secret"))
}

func TestCopy_PrimaryPanics(t *testing.T) {
	primary := &mockPrimary{available: true, panicMsg: "boom"}
	fallback := &mockFallback{ok: true}
	w, logs := newTestWriter(primary, fallback)

	var outcome Outcome
	assert.NotPanics(t, func() {
		outcome = w.Copy(context.Background(), "secret")
	})
	assert.Equal(t, CopiedFallback, outcome)
	assert.Contains(t, logs.String(), "panic: boom")
}

func TestCopy_FallbackOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		fallback *mockFallback
		want     Outcome
		wantLog  string
	}{
		{
			name:     "unsuccessful",
			fallback: &mockFallback{ok: false},
			want:     FallbackUnsuccessful,
			wantLog:  "copying text command was unsuccessful",
		},
		{
			name:     "error",
			fallback: &mockFallback{err: errors.New("no tty")},
			want:     Failed,
			wantLog:  "fallback: unable to copy: no tty",
		},
		{
			name:     "panic",
			fallback: &mockFallback{panicMsg: "unsupported"},
			want:     Failed,
			wantLog:  "fallback: unable to copy: panic: unsupported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &mockPrimary{available: true, err: errors.New("denied")}
			w, logs := newTestWriter(primary, tt.fallback)

			var outcome Outcome
			require.NotPanics(t, func() {
				outcome = w.Copy(context.Background(), "text")
			})
			assert.Equal(t, tt.want, outcome)
			assert.Contains(t, logs.String(), tt.wantLog)
			assert.Len(t, tt.fallback.calls, 1)
		})
	}
}

func TestCopy_NoFallback(t *testing.T) {
	primary := &mockPrimary{available: true, err: errors.New("denied")}
	w, logs := newTestWriter(primary, nil)

	assert.Equal(t, Failed, w.Copy(context.Background(), "text"))
	assert.Contains(t, logs.String(), "no fallback copy mechanism configured")
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "copied", CopiedPrimary.String())
	assert.Equal(t, "copied-fallback", CopiedFallback.String())
	assert.Equal(t, "fallback-unsuccessful", FallbackUnsuccessful.String())
	assert.Equal(t, "failed", Failed.String())
}

func TestWithLogger_NilKeepsDefault(t *testing.T) {
	w := NewWriter(WithLogger(nil), WithPrimary(nil), WithFallback(&mockFallback{ok: true}))
	assert.NotNil(t, w.logger)
	assert.Equal(t, CopiedFallback, w.Copy(context.Background(), "x"))
}
