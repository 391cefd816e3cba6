package ui

import (
	"strings"
	"testing"

	"pixelgram/internal/content"
	"pixelgram/internal/social"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestSidebar(menu []social.MenuItem) SidebarModel {
	return NewSidebarModel(content.Demo().Profile(), menu, NewStyles(LightTheme()), nil)
}

func lineContaining(t *testing.T, view, needle string) string {
	t.Helper()
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, needle) {
			return line
		}
	}
	t.Fatalf("no line containing %q in:\n%s", needle, view)
	return ""
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestActiveItems(t *testing.T) {
	menu := social.DefaultMenu()

	got := ActiveItems(menu, social.ViewMessages)
	if len(got) != 1 || menu[got[0]].ID != social.ViewMessages {
		t.Fatalf("expected messages row active, got %v", got)
	}

	if got := ActiveItems(menu, social.ViewProfile); len(got) != 0 {
		t.Fatalf("profile has no menu row, expected none active, got %v", got)
	}

	for _, v := range social.AllViews() {
		if v == social.ViewProfile {
			continue
		}
		if got := ActiveItems(menu, v); len(got) != 1 {
			t.Errorf("%s: expected exactly one active row, got %v", v, got)
		}
	}
}

func TestSidebarBadges(t *testing.T) {
	m := newTestSidebar(social.DefaultMenu())
	m.SetActive(social.ViewFeed)
	view := m.View()

	if line := lineContaining(t, view, "Home"); strings.ContainsAny(line, "0123456789") {
		t.Fatalf("home row should carry no badge: %q", line)
	}
	if line := lineContaining(t, view, "Messages"); !strings.Contains(line, "12") {
		t.Fatalf("messages row should show 12: %q", line)
	}
	if line := lineContaining(t, view, "Notifications"); !strings.Contains(line, "5") {
		t.Fatalf("notifications row should show 5: %q", line)
	}
	if line := lineContaining(t, view, "Events"); !strings.Contains(line, "2") {
		t.Fatalf("events row should show 2: %q", line)
	}
}

func TestSidebarZeroBadgeHidden(t *testing.T) {
	menu := []social.MenuItem{
		{ID: social.ViewFeed, Label: "Home", Icon: "⌂"},
		{ID: social.ViewGroups, Label: "Groups", Icon: "☷", Badge: social.Count(0)},
	}
	m := newTestSidebar(menu)
	if line := lineContaining(t, m.View(), "Groups"); strings.ContainsAny(line, "0123456789") {
		t.Fatalf("zero badge should not render: %q", line)
	}
}

func TestSidebarActiveRowKeepsBadge(t *testing.T) {
	m := newTestSidebar(social.DefaultMenu())
	m.SetActive(social.ViewMessages)
	if line := lineContaining(t, m.View(), "Messages"); !strings.Contains(line, "12") {
		t.Fatalf("active messages row should keep its badge: %q", line)
	}
}

func TestSidebarIdentityBlock(t *testing.T) {
	m := newTestSidebar(social.DefaultMenu())
	view := m.View()
	for _, want := range []string{"Alex Rivera", "@alex.rivera", "Settings", "Log out", "pixelgram"} {
		if !strings.Contains(view, want) {
			t.Errorf("sidebar missing %q", want)
		}
	}
}

func TestSidebarKeysIgnoredWithoutFocus(t *testing.T) {
	m := newTestSidebar(social.DefaultMenu())
	before := m.Cursor()
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if cmd != nil || m.Cursor() != before {
		t.Fatalf("unfocused rail should ignore keys")
	}
}

func TestSidebarActivateMenuRow(t *testing.T) {
	m := newTestSidebar(social.DefaultMenu())
	m.SetFocused(true)

	m, _ = m.Update(keyRunes("j"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a command on activate")
	}
	msg, ok := cmd().(ViewChangeMsg)
	if !ok || msg.View != social.ViewSearch {
		t.Fatalf("expected ViewChangeMsg{search}, got %#v", cmd())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if msg, ok := cmd().(ViewChangeMsg); !ok || msg.View != social.ViewFeed {
		t.Fatalf("expected ViewChangeMsg{feed}")
	}
}

func TestSidebarIdentityEmitsProfile(t *testing.T) {
	m := newTestSidebar(social.DefaultMenu())
	m.SetFocused(true)
	m, _ = m.Update(keyRunes("k"))
	if m.Cursor() != 0 {
		t.Fatalf("expected cursor on identity block, got %d", m.Cursor())
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if msg, ok := cmd().(ViewChangeMsg); !ok || msg.View != social.ViewProfile {
		t.Fatalf("identity block should request the profile view")
	}
}

func TestSidebarSettingsAndLogout(t *testing.T) {
	menu := social.DefaultMenu()
	m := newTestSidebar(menu)
	m.SetFocused(true)

	for i := 0; i < len(menu); i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.Cursor() != len(menu)+1 {
		t.Fatalf("expected cursor on settings, got %d", m.Cursor())
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatalf("settings should be inert")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // clamps at logout
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := cmd().(LogoutMsg); !ok {
		t.Fatalf("expected LogoutMsg")
	}
}

func TestSidebarCursorFollowsActive(t *testing.T) {
	menu := social.DefaultMenu()
	m := newTestSidebar(menu)
	m.SetActive(social.ViewTrending)
	if m.Cursor() != social.FindMenuItem(menu, social.ViewTrending)+1 {
		t.Fatalf("cursor should follow the active row, got %d", m.Cursor())
	}
	m.SetActive(social.ViewProfile)
	if m.Cursor() != 0 || m.Active() != social.ViewProfile {
		t.Fatalf("profile should move the cursor to the identity block")
	}
}
