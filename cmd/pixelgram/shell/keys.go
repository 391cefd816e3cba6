package shell

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the shell-wide bindings. They are checked before input is
// routed to the focused pane.
type KeyMap struct {
	Quit        key.Binding
	ToggleFocus key.Binding
	Profile     key.Binding
	Help        key.Binding
}

// DefaultKeyMap returns the shell bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Profile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "profile"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// helpKeys merges the shell bindings with those of the focused pane.
type helpKeys struct {
	global KeyMap
	pane   []key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding {
	out := append([]key.Binding{}, h.pane...)
	return append(out, h.global.ToggleFocus, h.global.Profile, h.global.Help, h.global.Quit)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		h.pane,
		{h.global.ToggleFocus, h.global.Profile, h.global.Help, h.global.Quit},
	}
}
