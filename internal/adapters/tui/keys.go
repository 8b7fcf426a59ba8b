package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings that stop the clock. Any other key only stops
// it in screensaver mode.
type keyMap struct {
	Quit      key.Binding
	Interrupt key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "interrupt"),
		),
	}
}
