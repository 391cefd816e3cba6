package ui

import (
	"pixelgram/internal/social"

	"github.com/charmbracelet/lipgloss"
)

// PlaceholderPage stands in for the top-level views that have no content of
// their own yet. It only shows the view title.
type PlaceholderPage struct {
	view   social.ViewID
	width  int
	styles Styles
}

// NewPlaceholderPage creates the page for v.
func NewPlaceholderPage(v social.ViewID, styles Styles) PlaceholderPage {
	return PlaceholderPage{view: v, styles: styles}
}

// ViewID returns the view the page stands in for.
func (p PlaceholderPage) ViewID() social.ViewID { return p.view }

// SetWidth sets the render width.
func (p *PlaceholderPage) SetWidth(w int) { p.width = w }

// View renders the title and a hint line.
func (p PlaceholderPage) View() string {
	title := p.styles.Title.Render(p.view.Title())
	body := p.styles.Subtitle.Render("Nothing to show here yet.")
	out := lipgloss.JoinVertical(lipgloss.Left, title, "", body)
	if p.width > 0 {
		out = lipgloss.NewStyle().Width(p.width).Render(out)
	}
	return out
}
