package ui

import (
	"fmt"
	"strings"

	"pixelgram/internal/content"
	"pixelgram/internal/logging"
	"pixelgram/internal/social"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Profile page glyphs and copy.
const (
	VerifiedGlyph  = "✔"
	HighlightGlyph = "◉"
	NewGlyph       = "+"
	NewLabel       = "New"

	ReelsEmptyTitle = "Share your first reel"
	ReelsEmptyBody  = "Reels you share will appear on your profile."
)

// profileZoneScope namespaces the page's zone IDs. Only one profile page is
// mounted at a time, so remounts reuse the same IDs.
const profileZoneScope = "profile"

func tabZone(t social.ProfileTab) string { return "tab:" + t.String() }

// ProfilePageModel is one mounted profile page. Everything it shows is
// captured when it is created; the tab, hover and scroll state belong to this
// instance only and are lost when the shell drops it.
type ProfilePageModel struct {
	id   string
	user social.UserProfile

	posts      []social.PostSummary
	saved      []social.PostSummary
	tagged     []social.PostSummary
	highlights []social.HighlightReel

	selectedTab     social.ProfileTab
	hovered         int
	highlightOffset int

	focused       bool
	width         int
	height        int
	preferredCell int

	viewport viewport.Model
	keys     ProfileKeyMap
	styles   Styles
	zones    *Zones
}

// NewProfilePageModel mounts a fresh profile page for user over src.
func NewProfilePageModel(user social.UserProfile, src content.Source, styles Styles, zones *Zones) ProfilePageModel {
	id := uuid.NewString()
	m := ProfilePageModel{
		id:            id,
		user:          user,
		posts:         src.Posts(),
		saved:         src.Saved(),
		tagged:        src.Tagged(),
		highlights:    src.Highlights(),
		selectedTab:   social.TabPosts,
		hovered:       -1,
		preferredCell: DefaultGalleryCellWidth,
		viewport:      viewport.New(0, 0),
		keys:          DefaultProfileKeyMap(),
		styles:        styles,
		zones:         zones.Scoped(profileZoneScope),
	}
	logging.Profile("profile page %s mounted for %s", id, user.Handle())
	return m
}

// InstanceID identifies this mount.
func (m ProfilePageModel) InstanceID() string { return m.id }

// SelectedTab returns the tab whose content is shown.
func (m ProfilePageModel) SelectedTab() social.ProfileTab { return m.selectedTab }

// SelectTab shows tab t and clears the hovered cell. Unknown tabs are ignored.
func (m *ProfilePageModel) SelectTab(t social.ProfileTab) {
	if t < social.TabPosts || t > social.TabTagged || t == m.selectedTab {
		return
	}
	logging.ProfileDebug("profile %s: tab %s -> %s", m.id, m.selectedTab, t)
	m.selectedTab = t
	m.hovered = -1
	m.viewport.GotoTop()
	m.refresh()
}

// VisiblePosts returns the list backing the selected tab, nil for reels.
func (m ProfilePageModel) VisiblePosts() []social.PostSummary {
	switch m.selectedTab {
	case social.TabPosts:
		return m.posts
	case social.TabSaved:
		return m.saved
	case social.TabTagged:
		return m.tagged
	default:
		return nil
	}
}

// Hovered returns the hovered gallery cell, or -1.
func (m ProfilePageModel) Hovered() int { return m.hovered }

// SetHovered sets the hovered cell; out of range values clear it.
func (m *ProfilePageModel) SetHovered(i int) {
	if i < 0 || i >= len(m.VisiblePosts()) {
		i = -1
	}
	if i == m.hovered {
		return
	}
	m.hovered = i
	m.refresh()
}

// HighlightOffset returns the index of the first visible highlight.
func (m ProfilePageModel) HighlightOffset() int { return m.highlightOffset }

// SetSize resizes the page.
func (m *ProfilePageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
	m.refresh()
}

// SetPreferredCellWidth caps the gallery cell width.
func (m *ProfilePageModel) SetPreferredCellWidth(w int) {
	if w > 0 {
		m.preferredCell = w
		m.refresh()
	}
}

// SetFocused toggles keyboard focus.
func (m *ProfilePageModel) SetFocused(f bool) { m.focused = f }

// Keys exposes the page bindings for the help bar.
func (m ProfilePageModel) Keys() ProfileKeyMap { return m.keys }

// Init implements the page model contract.
func (m ProfilePageModel) Init() tea.Cmd {
	return nil
}

// Update handles tab selection, hover, highlight scrolling and paging.
func (m ProfilePageModel) Update(msg tea.Msg) (ProfilePageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		m.handleKey(msg)

	case tea.MouseMsg:
		switch {
		case isMotion(msg):
			m.SetHovered(m.cellAt(msg))
		case isClick(msg):
			for _, t := range social.ProfileTabs() {
				if m.zones.Hit(tabZone(t), msg) {
					m.SelectTab(t)
					break
				}
			}
		case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *ProfilePageModel) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Tab1):
		m.SelectTab(social.TabPosts)
	case key.Matches(msg, m.keys.Tab2):
		m.SelectTab(social.TabReels)
	case key.Matches(msg, m.keys.Tab3):
		m.SelectTab(social.TabSaved)
	case key.Matches(msg, m.keys.Tab4):
		m.SelectTab(social.TabTagged)
	case key.Matches(msg, m.keys.NextTab):
		m.SelectTab(m.selectedTab.Next())
	case key.Matches(msg, m.keys.PrevTab):
		m.SelectTab(m.selectedTab.Prev())
	case key.Matches(msg, m.keys.CellLeft):
		m.moveHover(-1)
	case key.Matches(msg, m.keys.CellRight):
		m.moveHover(1)
	case key.Matches(msg, m.keys.CellUp):
		m.moveHover(-GalleryColumns)
	case key.Matches(msg, m.keys.CellDown):
		m.moveHover(GalleryColumns)
	case key.Matches(msg, m.keys.HighlightPrev):
		m.scrollHighlights(-1)
	case key.Matches(msg, m.keys.HighlightNext):
		m.scrollHighlights(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
	}
}

// moveHover steps the hovered cell by delta, starting from the first cell
// when nothing is hovered. Steps that would leave the grid are ignored.
func (m *ProfilePageModel) moveHover(delta int) {
	n := len(m.VisiblePosts())
	if n == 0 {
		return
	}
	if m.hovered < 0 {
		m.SetHovered(0)
		return
	}
	next := m.hovered + delta
	if next < 0 || next >= n {
		return
	}
	m.SetHovered(next)
}

func (m *ProfilePageModel) scrollHighlights(delta int) {
	next := m.highlightOffset + delta
	if next < 0 || next >= len(m.highlights) {
		return
	}
	m.highlightOffset = next
	m.refresh()
}

func (m ProfilePageModel) cellAt(msg tea.MouseMsg) int {
	for i := range m.VisiblePosts() {
		if m.zones.Hit(CellZone(i), msg) {
			return i
		}
	}
	return -1
}

// refresh pushes the rendered page into the viewport.
func (m *ProfilePageModel) refresh() {
	if m.height > 0 {
		m.viewport.SetContent(m.render())
	}
}

// View renders the page. Without a size the page is rendered unclipped.
func (m ProfilePageModel) View() string {
	if m.height <= 0 {
		return m.render()
	}
	return m.viewport.View()
}

func (m ProfilePageModel) render() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		m.renderHighlights(),
		"",
		m.renderTabs(),
		m.styles.RenderDivider(m.contentWidth()),
		m.renderBody(),
	)
}

func (m ProfilePageModel) contentWidth() int {
	if m.width > 0 {
		return m.width
	}
	return GalleryColumns * (DefaultGalleryCellWidth + CellBorderWidth)
}

func (m ProfilePageModel) renderHeader() string {
	s := m.styles
	u := m.user

	avatar := s.Avatar.Render(u.Initials())
	textWidth := m.contentWidth() - lipgloss.Width(avatar) - 2
	if textWidth < MinGalleryCellWidth {
		textWidth = MinGalleryCellWidth
	}

	name := s.Bold.Render(u.FullName)
	if u.Verified {
		name += " " + s.VerifiedTag.Render(VerifiedGlyph)
	}

	lines := []string{name, s.Muted.Render(u.Handle())}
	if u.Bio != "" {
		lines = append(lines, s.Body.Width(textWidth).Render(u.Bio))
	}

	var meta []string
	if u.Location != "" {
		meta = append(meta, "⌖ "+u.Location)
	}
	if u.Link != "" {
		meta = append(meta, "↗ "+u.Link)
	}
	if !u.JoinedAt.IsZero() {
		meta = append(meta, "Joined "+u.JoinedAt.Format("January 2006"))
	}
	for _, line := range packInline(meta, " · ", textWidth) {
		lines = append(lines, s.Muted.Render(line))
	}

	lines = append(lines, packInline([]string{
		m.counter(uint(len(m.posts)), "posts"),
		m.counter(u.Followers, "followers"),
		m.counter(u.Following, "following"),
	}, "   ", textWidth)...)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		avatar,
		"  ",
		lipgloss.NewStyle().MaxWidth(textWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...)),
	)
}

// packInline joins items with sep, starting a new line whenever the next item
// would overflow width. Items are never split.
func packInline(items []string, sep string, width int) []string {
	var out []string
	var cur string
	for _, item := range items {
		switch {
		case cur == "":
			cur = item
		case lipgloss.Width(cur)+lipgloss.Width(sep)+lipgloss.Width(item) <= width:
			cur += sep + item
		default:
			out = append(out, cur)
			cur = item
		}
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}

func (m ProfilePageModel) counter(n uint, label string) string {
	return fmt.Sprintf("%s %s", m.styles.Counter.Render(FormatCount(n)), m.styles.Muted.Render(label))
}

// HighlightTitle returns the title as displayed under its ring.
func HighlightTitle(h social.HighlightReel) string {
	return Truncate(h.Title, HighlightRingWidth)
}

func (m ProfilePageModel) renderRing(style lipgloss.Style, glyph, title string) string {
	ring := style.Width(HighlightRingWidth).Render(glyph)
	label := m.styles.Muted.Width(HighlightRingWidth + 2).Align(lipgloss.Center).Render(title)
	return lipgloss.JoinVertical(lipgloss.Center, ring, label)
}

func (m ProfilePageModel) renderHighlights() string {
	slot := HighlightRingWidth + 2 + HighlightGap
	fit := m.contentWidth()/slot - 1 // "New" takes the first slot
	if fit < 1 {
		fit = 1
	}

	parts := []string{m.renderRing(m.styles.RingNew, NewGlyph, NewLabel)}
	end := m.highlightOffset + fit
	if end > len(m.highlights) {
		end = len(m.highlights)
	}
	for _, h := range m.highlights[m.highlightOffset:end] {
		parts = append(parts, strings.Repeat(" ", HighlightGap),
			m.renderRing(m.styles.Ring, HighlightGlyph, HighlightTitle(h)))
	}
	if end < len(m.highlights) {
		parts = append(parts, " "+m.styles.Muted.Render("›"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m ProfilePageModel) renderTabs() string {
	parts := make([]string, 0, len(social.ProfileTabs()))
	for _, t := range social.ProfileTabs() {
		style := m.styles.Tab
		if t == m.selectedTab {
			style = m.styles.TabActive
		}
		parts = append(parts, m.zones.Mark(tabZone(t), style.Render(t.Label())))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m ProfilePageModel) renderBody() string {
	if m.selectedTab == social.TabReels {
		return m.styles.EmptyState.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Title.Render(ReelsEmptyTitle),
			ReelsEmptyBody,
		))
	}

	variant := VariantPlain
	if m.selectedTab == social.TabTagged {
		variant = VariantTagged
	}
	return RenderGallery(m.VisiblePosts(), variant, GalleryOptions{
		CellWidth: GalleryCellWidthFor(m.contentWidth(), m.preferredCell),
		Hovered:   m.hovered,
		Styles:    m.styles,
		Zones:     m.zones,
	})
}
