package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/entrhq/passgen/pkg/generator"
)

const (
	sliderWidth   = 30
	minFieldWidth = 20
)

// View renders the entire TUI interface.
func (m *model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.buildHeader(),
		"",
		m.buildSlider(),
		m.buildToggle(focusDigits, "Numbers", m.session.AllowDigits()),
		m.buildToggle(focusSpecial, "Special Characters", m.session.AllowSpecial()),
		"",
		m.buildPasswordRow(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		containerStyle.Render(body),
		" "+m.help.View(m.keys),
	)
}

// buildHeader renders the title line
func (m *model) buildHeader() string {
	return headerStyle.Render("Password Generator")
}

// buildSlider renders the length control: a bar plus the numeric value
func (m *model) buildSlider() string {
	length := m.session.Length()
	filled := sliderPosition(length, sliderWidth)

	bar := sliderFillStyle.Render(strings.Repeat("━", filled)) +
		sliderFillStyle.Render("●") +
		sliderTrackStyle.Render(strings.Repeat("─", sliderWidth-filled-1))

	label := m.label(focusLength, "Length:")
	return fmt.Sprintf("%s %s %s %s %s",
		mutedStyle.Render("◀"), bar, mutedStyle.Render("▶"), label, labelStyle.Render(fmt.Sprint(length)))
}

// sliderPosition maps length onto [0, width-1] cells before the knob.
func sliderPosition(length, width int) int {
	span := generator.MaxLength - generator.MinLength
	pos := (generator.ClampLength(length) - generator.MinLength) * (width - 1) / span
	return pos
}

// buildToggle renders one checkbox row
func (m *model) buildToggle(area focusArea, text string, checked bool) string {
	box := mutedStyle.Render("[ ]")
	if checked {
		box = checkedStyle.Render("[x]")
	}
	return box + " " + m.label(area, text)
}

// buildPasswordRow renders the read-only password field next to the Copy button
func (m *model) buildPasswordRow() string {
	password := m.session.Password()
	if m.session.Selected() {
		password = passwordSelectedStyle.Render(password)
	}
	field := passwordBoxStyle.Width(m.fieldWidth()).Render(password)

	button := buttonStyle.Render("Copy")
	if m.focus == focusCopy {
		button = focusedButtonStyle.Render("Copy")
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, field, " ", button)
}

// fieldWidth sizes the password box to the window, wide enough for the
// longest password when the terminal allows it.
func (m *model) fieldWidth() int {
	// container border+padding (6), button (10), gap (1), field border+padding (4)
	available := m.width - 21
	want := generator.MaxLength + 2
	switch {
	case available < minFieldWidth:
		return minFieldWidth
	case available > want:
		return want
	default:
		return available
	}
}

func (m *model) label(area focusArea, text string) string {
	if m.focus == area {
		return focusedLabelStyle.Render("› " + text)
	}
	return labelStyle.Render("  " + text)
}
