package ui

import (
	"pixelgram/internal/social"

	tea "github.com/charmbracelet/bubbletea"
)

// ViewChangeMsg asks the shell to make View the active top-level view.
type ViewChangeMsg struct {
	View social.ViewID
}

// LogoutMsg asks the session controller to sign the user out.
type LogoutMsg struct{}

// RequestView returns a command emitting a ViewChangeMsg for v.
func RequestView(v social.ViewID) tea.Cmd {
	return func() tea.Msg { return ViewChangeMsg{View: v} }
}

// RequestLogout returns a command emitting a LogoutMsg.
func RequestLogout() tea.Cmd {
	return func() tea.Msg { return LogoutMsg{} }
}
