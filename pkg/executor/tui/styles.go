package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette
// This is the single source of truth for all TUI colors.
var (
	salmonPink  = lipgloss.Color("#FFB3BA") // primary accent
	coralPink   = lipgloss.Color("#FFCCCB") // secondary accent
	mintGreen   = lipgloss.Color("#A8E6CF") // enabled toggles
	mutedGray   = lipgloss.Color("#6B7280") // secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // primary text
	deepGray    = lipgloss.Color("#1F2937") // text on highlighted fields
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(brightWhite)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(coralPink).
				Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	sliderFillStyle = lipgloss.NewStyle().
			Foreground(salmonPink)

	sliderTrackStyle = lipgloss.NewStyle().
				Foreground(mutedGray)

	checkedStyle = lipgloss.NewStyle().
			Foreground(mintGreen).
			Bold(true)

	// Password field, normal and selected (after a copy).
	passwordBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(mutedGray).
				Foreground(brightWhite).
				Padding(0, 1)

	passwordSelectedStyle = lipgloss.NewStyle().
				Background(salmonPink).
				Foreground(deepGray)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedGray).
			Foreground(brightWhite).
			Padding(0, 2)

	focusedButtonStyle = buttonStyle.
				BorderForeground(salmonPink).
				Foreground(salmonPink).
				Bold(true)

	containerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(salmonPink).
			Padding(1, 2)
)
