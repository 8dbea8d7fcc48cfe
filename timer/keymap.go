package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	start key.Binding
	pause key.Binding
	reset key.Binding
	quit  key.Binding
}

func newKeymap() keymap {
	return keymap{
		start: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "start"),
		),
		pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
			key.WithDisabled(),
		),
		reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
