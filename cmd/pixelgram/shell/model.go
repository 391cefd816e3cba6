// Package shell is the root Bubble Tea model: it lays the navigation rail next
// to the active view, owns the navigation store and mounts or drops the
// profile page as the active view changes.
package shell

import (
	"pixelgram/cmd/pixelgram/ui"
	"pixelgram/internal/config"
	"pixelgram/internal/content"
	"pixelgram/internal/logging"
	"pixelgram/internal/navigation"
	"pixelgram/internal/social"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus identifies the pane receiving keyboard input.
type Focus int

const (
	FocusRail Focus = iota
	FocusContent
)

func (f Focus) String() string {
	if f == FocusContent {
		return "content"
	}
	return "rail"
}

// Options configures a shell.
type Options struct {
	Session content.Session
	Source  content.Source

	// Store is optional; a store on cfg's initial view is created when nil.
	Store *navigation.Store

	UI          config.UIConfig
	InitialView social.ViewID
	Menu        []social.MenuItem
	Styles      ui.Styles

	// Zones enables mouse hit-testing. Nil runs keyboard only.
	Zones *ui.Zones

	// OnLogout is called once when the user signs out.
	OnLogout func()
}

// Model is the application shell.
type Model struct {
	store       *navigation.Store
	unsubscribe func()

	session content.Session
	source  content.Source
	uiCfg   config.UIConfig
	styles  ui.Styles
	zones   *ui.Zones

	sidebar     ui.SidebarModel
	profile     *ui.ProfilePageModel // nil unless the profile view is mounted
	placeholder ui.PlaceholderPage

	focus    Focus
	keys     KeyMap
	help     help.Model
	showHelp bool

	width  int
	height int
	layout ui.LayoutConfig

	loggedOut bool
	onLogout  func()
}

// New builds a shell and mounts the store's current view.
func New(opts Options) *Model {
	store := opts.Store
	if store == nil {
		store = navigation.New(opts.InitialView)
	}
	menu := opts.Menu
	if menu == nil {
		menu = social.DefaultMenu()
	}
	uiCfg := opts.UI
	if uiCfg.SidebarWidth <= 0 {
		uiCfg.SidebarWidth = ui.DefaultSidebarWidth
	}
	if uiCfg.GalleryCellWidth <= 0 {
		uiCfg.GalleryCellWidth = ui.DefaultGalleryCellWidth
	}

	m := &Model{
		store:    store,
		session:  opts.Session,
		source:   opts.Source,
		uiCfg:    uiCfg,
		styles:   opts.Styles,
		zones:    opts.Zones,
		focus:    FocusRail,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		onLogout: opts.OnLogout,
	}
	m.sidebar = ui.NewSidebarModel(opts.Session.Profile(), menu, opts.Styles, opts.Zones.Scoped("rail"))
	m.sidebar.SetSize(uiCfg.SidebarWidth, 0)
	m.mount(store.Current())
	m.applyFocus()
	m.unsubscribe = store.Subscribe(m.onTransition)

	logging.Boot("shell ready on %s", store.Current())
	return m
}

// Close detaches the shell from its store.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Store returns the navigation store the shell renders from.
func (m *Model) Store() *navigation.Store { return m.store }

// ActiveView returns the mounted top-level view.
func (m *Model) ActiveView() social.ViewID { return m.store.Current() }

// Sidebar returns the rail.
func (m *Model) Sidebar() ui.SidebarModel { return m.sidebar }

// Profile returns the mounted profile page, or nil.
func (m *Model) Profile() *ui.ProfilePageModel { return m.profile }

// Focus returns the pane receiving keys.
func (m *Model) Focus() Focus { return m.focus }

// LoggedOut reports whether the user signed out.
func (m *Model) LoggedOut() bool { return m.loggedOut }

// Navigate asks the store to activate v.
func (m *Model) Navigate(v social.ViewID) bool {
	return m.store.RequestTransition(v)
}

// onTransition keeps the rail and the mounted page in step with the store.
func (m *Model) onTransition(from, to social.ViewID) {
	logging.Navigation("%s -> %s", from, to)
	if from == social.ViewProfile && m.profile != nil {
		logging.Profile("profile page %s unmounted", m.profile.InstanceID())
		m.profile = nil
	}
	m.mount(to)
	m.applyFocus()
}

func (m *Model) mount(v social.ViewID) {
	m.sidebar.SetActive(v)
	if v == social.ViewProfile {
		page := ui.NewProfilePageModel(m.session.Profile(), m.source, m.styles, m.zones)
		page.SetPreferredCellWidth(m.uiCfg.GalleryCellWidth)
		m.profile = &page
	} else {
		m.placeholder = ui.NewPlaceholderPage(v, m.styles)
	}
	m.resize()
}

func (m *Model) applyFocus() {
	m.sidebar.SetFocused(m.focus == FocusRail)
	if m.profile != nil {
		m.profile.SetFocused(m.focus == FocusContent)
	}
}

func (m *Model) resize() {
	if m.width == 0 {
		return
	}
	m.layout = ui.NewLayoutConfig(m.width, m.height, m.uiCfg.SidebarWidth)
	bodyHeight := m.layout.ContentHeight()
	m.sidebar.SetSize(m.layout.SidebarWidth, bodyHeight)

	if m.profile != nil {
		m.profile.SetSize(m.layout.PageWidth(), m.layout.PageHeight())
	}
	m.placeholder.SetWidth(m.layout.PageWidth())
	// The footer pads the help line.
	m.help.Width = m.width - m.styles.Footer.GetHorizontalFrameSize()
	logging.NavigationDebug("resize %dx%d compact=%v rail=%d",
		m.width, m.height, m.layout.IsCompact, m.layout.SidebarWidth)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case ui.ViewChangeMsg:
		if !m.Navigate(msg.View) {
			logging.NavigationDebug("view change to %q ignored", msg.View)
		}
		return m, nil

	case ui.LogoutMsg:
		return m, m.logout()

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) logout() tea.Cmd {
	if !m.loggedOut {
		m.loggedOut = true
		logging.Boot("user %s logged out", m.session.Profile().Handle())
		if m.onLogout != nil {
			m.onLogout()
		}
	}
	return tea.Quit
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.ToggleFocus):
		m.toggleFocus()
		return nil
	case key.Matches(msg, m.keys.Profile):
		m.Navigate(social.ViewProfile)
		return nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case FocusRail:
		m.sidebar, cmd = m.sidebar.Update(msg)
	case FocusContent:
		if m.profile != nil {
			*m.profile, cmd = m.profile.Update(msg)
		}
	}
	return cmd
}

func (m *Model) toggleFocus() {
	if m.focus == FocusRail {
		m.focus = FocusContent
	} else {
		m.focus = FocusRail
	}
	logging.SidebarDebug("focus -> %s", m.focus)
	m.applyFocus()
}

// handleMouse gives every pane a chance to hit-test the event.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(msg)
	cmds = append(cmds, cmd)
	if m.profile != nil {
		*m.profile, cmd = m.profile.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
