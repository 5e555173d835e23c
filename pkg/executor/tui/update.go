package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/passgen/pkg/generator"
)

// Init is called once when the program starts. The session already holds
// the initial password, so there is nothing to schedule.
func (m *model) Init() tea.Cmd {
	m.logger.Debugf("generator ready: length=%d digits=%t special=%t",
		m.session.Length(), m.session.AllowDigits(), m.session.AllowSpecial())
	return nil
}

// Update handles all state updates for the TUI model.
// Settings changes regenerate the password synchronously through the
// session setters, so the next View always shows a matching password.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case copyResultMsg:
		m.logger.Infof("copy finished: outcome=%s length=%d", msg.outcome, msg.length)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Decrease):
		m.session.Step(-1)
	case key.Matches(msg, m.keys.Increase):
		m.session.Step(1)
	case key.Matches(msg, m.keys.DecreaseLarge):
		m.session.Step(-10)
	case key.Matches(msg, m.keys.IncreaseLarge):
		m.session.Step(10)
	case key.Matches(msg, m.keys.Min):
		m.session.SetLength(generator.MinLength)
	case key.Matches(msg, m.keys.Max):
		m.session.SetLength(generator.MaxLength)

	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % focusCount
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + focusCount - 1) % focusCount

	case key.Matches(msg, m.keys.Digits):
		m.session.ToggleDigits()
	case key.Matches(msg, m.keys.Special):
		m.session.ToggleSpecial()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyPassword()

	case key.Matches(msg, m.keys.Activate):
		return m, m.activate()
	}

	return m, nil
}

// activate runs the focused control.
func (m *model) activate() tea.Cmd {
	switch m.focus {
	case focusDigits:
		m.session.ToggleDigits()
	case focusSpecial:
		m.session.ToggleSpecial()
	case focusCopy:
		return m.copyPassword()
	}
	return nil
}

// copyPassword highlights the password field and starts the copy in the
// background. The outcome is only logged; there is no pending state.
func (m *model) copyPassword() tea.Cmd {
	m.session.Select()
	if m.copier == nil {
		m.logger.Warnf("copy requested but no clipboard is configured")
		return nil
	}

	ctx, copier, text := m.ctx, m.copier, m.session.Password()
	return func() tea.Msg {
		return copyResultMsg{outcome: copier.Copy(ctx, text), length: len(text)}
	}
}
