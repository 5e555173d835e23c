// Package tui provides the interactive terminal password generator.
//
// The TUI codebase is split into multiple files:
// - executor.go: program lifecycle
// - model.go: model structure and state
// - update.go: Bubble Tea Update function and key handling
// - view.go: Bubble Tea View function and rendering
// - keys.go: key bindings and help
// - styles.go: color scheme and styling
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/passgen/pkg/logging"
	"github.com/entrhq/passgen/pkg/session"
)

// Executor runs the generator widget in the terminal.
type Executor struct {
	session *session.Session
	copier  Copier
	logger  *logging.Logger
	program *tea.Program
	options []tea.ProgramOption
}

// NewExecutor creates an executor for sess. copier handles the Copy action.
func NewExecutor(sess *session.Session, copier Copier, logger *logging.Logger, opts ...tea.ProgramOption) *Executor {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Executor{
		session: sess,
		copier:  copier,
		logger:  logger,
		options: opts,
	}
}

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
func (e *Executor) Run(ctx context.Context) error {
	e.logger.Infof("TUI executor starting")

	m := newModel(ctx, e.session, e.copier, e.logger)

	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, e.options...)
	e.program = tea.NewProgram(&m, opts...)

	if _, err := e.program.Run(); err != nil {
		if ctx.Err() != nil {
			e.logger.Infof("TUI stopped: %v", ctx.Err())
			return nil
		}
		return fmt.Errorf("failed to run TUI program: %w", err)
	}

	e.logger.Infof("TUI executor finished")
	return nil
}
