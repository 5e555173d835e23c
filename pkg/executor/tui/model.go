package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/entrhq/passgen/pkg/clipboard"
	"github.com/entrhq/passgen/pkg/logging"
	"github.com/entrhq/passgen/pkg/session"
)

// Copier places text on the clipboard. *clipboard.Writer implements it.
type Copier interface {
	Copy(ctx context.Context, text string) clipboard.Outcome
}

// focusArea is the control that receives space/enter.
type focusArea int

const (
	focusLength focusArea = iota
	focusDigits
	focusSpecial
	focusCopy
	focusCount
)

// model represents the state of the TUI application.
type model struct {
	// Bubble Tea components
	help help.Model
	keys keyMap

	// Generator state: settings plus the derived password
	session *session.Session

	// Copy action
	copier Copier
	ctx    context.Context
	logger *logging.Logger

	// UI state
	focus focusArea

	// Window dimensions
	width  int
	height int
}

// copyResultMsg reports how a copy attempt ended. It only feeds the log.
type copyResultMsg struct {
	outcome clipboard.Outcome
	length  int
}

func newModel(ctx context.Context, sess *session.Session, copier Copier, logger *logging.Logger) model {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return model{
		help:    help.New(),
		keys:    defaultKeyMap(),
		session: sess,
		copier:  copier,
		ctx:     ctx,
		logger:  logger,
		focus:   focusLength,
		width:   80,
	}
}
