package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding the generator responds to.
type keyMap struct {
	Decrease      key.Binding
	Increase      key.Binding
	DecreaseLarge key.Binding
	IncreaseLarge key.Binding
	Min           key.Binding
	Max           key.Binding
	Next          key.Binding
	Prev          key.Binding
	Activate      key.Binding
	Digits        key.Binding
	Special       key.Binding
	Copy          key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "shorter"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "longer"),
		),
		DecreaseLarge: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "-10"),
		),
		IncreaseLarge: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "+10"),
		),
		Min: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "min length"),
		),
		Max: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "max length"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab/↑", "previous"),
		),
		Activate: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "toggle or copy"),
		),
		Digits: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "numbers"),
		),
		Special: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "special characters"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrease, k.Increase, k.Digits, k.Special, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Decrease, k.Increase, k.DecreaseLarge, k.IncreaseLarge, k.Min, k.Max},
		{k.Next, k.Prev, k.Activate},
		{k.Digits, k.Special, k.Copy, k.Help, k.Quit},
	}
}
