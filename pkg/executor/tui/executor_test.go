package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/passgen/pkg/generator"
	"github.com/entrhq/passgen/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_RunQuits(t *testing.T) {
	sess := session.New(generator.DefaultOptions(), generator.NewSource(1))
	copier := &fakeCopier{}

	var out bytes.Buffer
	e := NewExecutor(sess, copier, nil,
		// the space separates the two keys; it lands on the slider and is a no-op
		tea.WithInput(strings.NewReader("d q")),
		tea.WithOutput(&out),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, e.Run(ctx))
	assert.True(t, sess.AllowDigits())
}

func TestExecutor_RunCancelled(t *testing.T) {
	sess := session.New(generator.DefaultOptions(), generator.NewSource(1))

	var out bytes.Buffer
	e := NewExecutor(sess, &fakeCopier{}, nil,
		tea.WithInput(&blockingReader{}),
		tea.WithOutput(&out),
	)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	assert.NoError(t, e.Run(ctx))
}

// blockingReader never yields input.
type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {}
}
