package ui

import "github.com/charmbracelet/bubbles/key"

// SidebarKeyMap binds rail navigation.
type SidebarKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
}

// DefaultSidebarKeyMap returns the rail bindings.
func DefaultSidebarKeyMap() SidebarKeyMap {
	return SidebarKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open"),
		),
	}
}

// ProfileKeyMap binds profile page interaction.
type ProfileKeyMap struct {
	Tab1          key.Binding
	Tab2          key.Binding
	Tab3          key.Binding
	Tab4          key.Binding
	NextTab       key.Binding
	PrevTab       key.Binding
	CellLeft      key.Binding
	CellRight     key.Binding
	CellUp        key.Binding
	CellDown      key.Binding
	HighlightPrev key.Binding
	HighlightNext key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
}

// DefaultProfileKeyMap returns the profile bindings.
func DefaultProfileKeyMap() ProfileKeyMap {
	return ProfileKeyMap{
		Tab1:          key.NewBinding(key.WithKeys("1"), key.WithHelp("1-4", "tab")),
		Tab2:          key.NewBinding(key.WithKeys("2")),
		Tab3:          key.NewBinding(key.WithKeys("3")),
		Tab4:          key.NewBinding(key.WithKeys("4")),
		NextTab:       key.NewBinding(key.WithKeys(".", ">"), key.WithHelp(">", "next tab")),
		PrevTab:       key.NewBinding(key.WithKeys(",", "<"), key.WithHelp("<", "prev tab")),
		CellLeft:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←↓↑→", "select post")),
		CellRight:     key.NewBinding(key.WithKeys("right", "l")),
		CellUp:        key.NewBinding(key.WithKeys("up", "k")),
		CellDown:      key.NewBinding(key.WithKeys("down", "j")),
		HighlightPrev: key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "highlights")),
		HighlightNext: key.NewBinding(key.WithKeys("]")),
		PageUp:        key.NewBinding(key.WithKeys("pgup")),
		PageDown:      key.NewBinding(key.WithKeys("pgdown")),
	}
}

// ShortHelp implements help.KeyMap.
func (k ProfileKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab1, k.NextTab, k.CellLeft, k.HighlightPrev}
}

// FullHelp implements help.KeyMap.
func (k ProfileKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ShortHelp implements help.KeyMap.
func (k SidebarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate}
}

// FullHelp implements help.KeyMap.
func (k SidebarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
