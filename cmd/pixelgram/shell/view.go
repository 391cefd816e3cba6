package shell

import (
	"fmt"

	"pixelgram/cmd/pixelgram/ui"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width > 0 && (m.width < ui.MinimumTerminalWidth || m.height < ui.MinimumTerminalHeight) {
		return m.styles.Muted.Render(fmt.Sprintf(
			"Terminal too small (%dx%d). Resize to at least %dx%d.",
			m.width, m.height, ui.MinimumTerminalWidth, ui.MinimumTerminalHeight))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebar.View(),
		m.renderContent(),
	)
	frame := lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
	return m.zones.Scan(frame)
}

func (m *Model) renderContent() string {
	var page string
	if m.profile != nil {
		page = m.profile.View()
	} else {
		page = m.placeholder.View()
	}

	style := m.styles.Content
	if m.width > 0 {
		style = style.Width(m.layout.ContentWidth()).Height(m.layout.ContentHeight())
	}
	return style.Render(page)
}

func (m *Model) renderFooter() string {
	keys := helpKeys{global: m.keys}
	switch {
	case m.focus == FocusRail:
		keys.pane = m.sidebar.Keys().ShortHelp()
	case m.profile != nil:
		keys.pane = m.profile.Keys().ShortHelp()
	}
	footer := m.styles.Footer
	if m.width > 0 {
		footer = footer.MaxWidth(m.width)
	}
	return footer.Render(m.help.View(keys))
}
