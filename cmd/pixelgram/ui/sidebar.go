package ui

import (
	"fmt"
	"strings"

	"pixelgram/internal/logging"
	"pixelgram/internal/social"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Zone IDs used by the rail.
const (
	zoneIdentity = "sidebar:identity"
	zoneSettings = "sidebar:settings"
	zoneLogout   = "sidebar:logout"
)

func menuZone(v social.ViewID) string { return "sidebar:item:" + string(v) }

// sidebarEntry is one focusable row. Rows are addressed by position so the
// menu table stays the only description of what the rail contains.
type sidebarEntry int

const (
	entryIdentity sidebarEntry = -1
	entrySettings sidebarEntry = -2
	entryLogout   sidebarEntry = -3
)

// SidebarModel is the navigation rail. It mirrors the active view pushed to it
// by the shell and turns interaction into ViewChangeMsg and LogoutMsg intents.
type SidebarModel struct {
	user   social.UserProfile
	menu   []social.MenuItem
	active social.ViewID

	cursor  int // index into entries()
	focused bool

	width  int
	height int

	keys   SidebarKeyMap
	styles Styles
	zones  *Zones
}

// NewSidebarModel creates the rail for user over the given menu table.
func NewSidebarModel(user social.UserProfile, menu []social.MenuItem, styles Styles, zones *Zones) SidebarModel {
	return SidebarModel{
		user:   user,
		menu:   menu,
		active: social.ViewFeed,
		cursor: 1, // first menu row
		width:  DefaultSidebarWidth,
		keys:   DefaultSidebarKeyMap(),
		styles: styles,
		zones:  zones,
	}
}

// SetActive records the view that is currently mounted.
func (m *SidebarModel) SetActive(v social.ViewID) {
	m.active = v
	// Follow the active row with the cursor when it has one.
	if idx := social.FindMenuItem(m.menu, v); idx >= 0 {
		m.cursor = idx + 1
	} else if v == social.ViewProfile {
		m.cursor = 0
	}
}

// Active returns the view the rail is highlighting against.
func (m SidebarModel) Active() social.ViewID { return m.active }

// SetFocused toggles keyboard focus.
func (m *SidebarModel) SetFocused(f bool) { m.focused = f }

// Focused reports keyboard focus.
func (m SidebarModel) Focused() bool { return m.focused }

// SetSize updates the rail dimensions.
func (m *SidebarModel) SetSize(w, h int) {
	if w < MinSidebarWidth {
		w = MinSidebarWidth
	}
	m.width = w
	m.height = h
}

// Width returns the rendered width including the border.
func (m SidebarModel) Width() int { return m.width }

// Keys exposes the rail bindings for the help bar.
func (m SidebarModel) Keys() SidebarKeyMap { return m.keys }

// Cursor returns the focused entry index (identity=0, menu rows, settings, logout).
func (m SidebarModel) Cursor() int { return m.cursor }

func (m SidebarModel) entries() []sidebarEntry {
	out := make([]sidebarEntry, 0, len(m.menu)+3)
	out = append(out, entryIdentity)
	for i := range m.menu {
		out = append(out, sidebarEntry(i))
	}
	return append(out, entrySettings, entryLogout)
}

// ActiveItems returns the menu indexes rendered as active for the given view:
// the single row whose ID matches, or none.
func ActiveItems(menu []social.MenuItem, active social.ViewID) []int {
	var out []int
	for i, item := range menu {
		if item.ID == active {
			out = append(out, i)
			break // at most one row is active
		}
	}
	return out
}

// Init implements the page model contract.
func (m SidebarModel) Init() tea.Cmd {
	return nil
}

// Update handles keys (when focused) and mouse clicks.
func (m SidebarModel) Update(msg tea.Msg) (SidebarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		entries := m.entries()
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Activate):
			return m, m.activate(entries[m.cursor])
		}

	case tea.MouseMsg:
		if !isClick(msg) {
			return m, nil
		}
		for i, e := range m.entries() {
			if m.zones.Hit(m.zoneFor(e), msg) {
				m.cursor = i
				return m, m.activate(e)
			}
		}
	}
	return m, nil
}

func (m SidebarModel) zoneFor(e sidebarEntry) string {
	switch e {
	case entryIdentity:
		return zoneIdentity
	case entrySettings:
		return zoneSettings
	case entryLogout:
		return zoneLogout
	default:
		return menuZone(m.menu[e].ID)
	}
}

// activate turns an entry into its intent. Settings has no behavior yet.
func (m SidebarModel) activate(e sidebarEntry) tea.Cmd {
	switch e {
	case entryIdentity:
		logging.SidebarDebug("profile shortcut")
		return RequestView(social.ViewProfile)
	case entrySettings:
		return nil
	case entryLogout:
		logging.SidebarDebug("logout requested")
		return RequestLogout()
	default:
		item := m.menu[e]
		logging.SidebarDebug("menu item %s activated", item.ID)
		return RequestView(item.ID)
	}
}

// View renders the rail.
func (m SidebarModel) View() string {
	inner := m.width - SidebarPadding - SidebarBorder
	if inner < 4 {
		inner = 4
	}

	var sb strings.Builder
	sb.WriteString(Logo(m.styles))
	sb.WriteString("\n")

	sb.WriteString(m.zones.Mark(zoneIdentity, m.renderIdentity(inner)))
	sb.WriteString("\n")
	sb.WriteString(m.styles.RenderDivider(inner))
	sb.WriteString("\n")

	active := ActiveItems(m.menu, m.active)
	for i, item := range m.menu {
		isActive := len(active) == 1 && active[0] == i
		row := m.renderItem(item, isActive, m.focused && m.cursor == i+1, inner)
		sb.WriteString(m.zones.Mark(menuZone(item.ID), row))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.RenderDivider(inner))
	sb.WriteString("\n")
	settingsIdx := len(m.menu) + 1
	sb.WriteString(m.zones.Mark(zoneSettings,
		m.renderPlain("⚙", "Settings", m.focused && m.cursor == settingsIdx, m.styles.NavItem, inner)))
	sb.WriteString("\n")
	sb.WriteString(m.zones.Mark(zoneLogout,
		m.renderPlain("⏻", "Log out", m.focused && m.cursor == settingsIdx+1, m.styles.Danger, inner)))

	style := m.styles.Sidebar.Width(m.width - SidebarBorder)
	if m.height > 0 {
		style = style.Height(m.height)
	}
	return style.Render(sb.String())
}

func (m SidebarModel) cursorMark(on bool) string {
	if on {
		return m.styles.NavCursor.Render("›")
	}
	return " "
}

func (m SidebarModel) renderIdentity(inner int) string {
	avatar := m.styles.Title.Render("(" + m.user.Initials() + ")")
	nameWidth := inner - lipgloss.Width(avatar) - 2
	name := m.styles.Bold.Render(Truncate(m.user.FullName, nameWidth))
	handle := m.styles.Muted.Render(Truncate(m.user.Handle(), nameWidth))
	onCursor := m.focused && m.cursor == 0
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.cursorMark(onCursor),
		avatar,
		" ",
		lipgloss.JoinVertical(lipgloss.Left, name, handle),
	)
}

// renderItem draws one menu row. The badge is shown only for a positive count;
// active rows use the compact badge style.
func (m SidebarModel) renderItem(item social.MenuItem, active, cursor bool, inner int) string {
	badge := ""
	if item.HasBadge() {
		count := FormatCount(*item.Badge)
		if active {
			badge = m.styles.BadgeCompact.Render(count)
		} else {
			badge = m.styles.Badge.Render(count)
		}
	}

	style := m.styles.NavItem
	if active {
		style = m.styles.NavActive
	}

	labelWidth := inner - 1 - 2 - 2 - lipgloss.Width(badge) - 1 // cursor, padding, icon, gap
	label := fmt.Sprintf("%s %s", item.Icon, Truncate(item.Label, labelWidth))
	gap := labelWidth + 2 - runewidth.StringWidth(label)
	if gap < 1 {
		gap = 1
	}
	body := label + strings.Repeat(" ", gap) + badge
	return m.cursorMark(cursor) + style.Render(body)
}

func (m SidebarModel) renderPlain(icon, label string, cursor bool, style lipgloss.Style, inner int) string {
	text := PadRight(icon+" "+label, inner-3)
	return m.cursorMark(cursor) + style.Render(text)
}
