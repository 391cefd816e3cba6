package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"pixelgram/cmd/pixelgram/shell"
	"pixelgram/cmd/pixelgram/ui"
	"pixelgram/internal/config"
	"pixelgram/internal/content"
	"pixelgram/internal/logging"
	"pixelgram/internal/social"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is everything resolved before the shell starts.
type app struct {
	cfg    *config.Config
	lib    *content.Library
	styles ui.Styles
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

// applyFlags copies the persistent flag overrides onto cfg.
func applyFlags(cfg *config.Config) {
	if fixturePath != "" {
		cfg.Content.FixturePath = fixturePath
	}
	if themeName != "" {
		cfg.UI.Theme = strings.ToLower(themeName)
	}
	if initialView != "" {
		cfg.Navigation.InitialView = initialView
	}
	if verbose {
		cfg.Logging.DebugMode = true
		cfg.Logging.Level = "debug"
	}
}

// bootstrap loads config, applies flag overrides, starts file logging and
// opens the content source.
func bootstrap() (*app, error) {
	path := resolvedConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := logging.Initialize(cfg.Logging.Dir, cfg.Logging.ToLogging()); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	logging.Boot("config loaded from %s", path)
	cfg.LogOverrides()

	lib, err := content.Open(cfg.Content.FixturePath)
	if err != nil {
		logging.BootError("content: %v", err)
		return nil, err
	}
	logger.Debug("content ready",
		zap.String("user", lib.Profile().Handle()),
		zap.Int("posts", len(lib.Posts())))

	return &app{
		cfg:    cfg,
		lib:    lib,
		styles: ui.NewStyles(ui.ThemeByName(cfg.UI.Theme)),
	}, nil
}

func (a *app) newShell(zones *ui.Zones, onLogout func()) *shell.Model {
	return shell.New(shell.Options{
		Session:     a.lib,
		Source:      a.lib,
		UI:          a.cfg.UI,
		InitialView: a.cfg.InitialView(),
		Styles:      a.styles,
		Zones:       zones,
		OnLogout:    onLogout,
	})
}

// runInteractive starts the full-screen shell.
func runInteractive() error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer logging.CloseAll()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	var zones *ui.Zones
	if a.cfg.UI.Mouse {
		manager := zone.New()
		defer manager.Close()
		zones = ui.NewZones(manager)
		opts = append(opts, tea.WithMouseAllMotion())
	}

	m := a.newShell(zones, func() {
		logging.Boot("session for %s ended", a.lib.Profile().Handle())
	})
	defer m.Close()

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	if m.LoggedOut() {
		fmt.Println("Signed out.")
	}
	return nil
}

func listViews(cmd *cobra.Command, args []string) error {
	writeViews(cmd.OutOrStdout(), social.DefaultMenu(), ui.DefaultStyles())
	return nil
}

// writeViews prints every view with its rail entry and badge, if any.
func writeViews(w io.Writer, menu []social.MenuItem, styles ui.Styles) {
	tbl := ui.NewTable("Views", "VIEW", "MENU", "BADGE")
	for _, v := range social.AllViews() {
		entry, badge := "(identity block)", ""
		if idx := social.FindMenuItem(menu, v); idx >= 0 {
			item := menu[idx]
			entry = item.Icon + " " + item.Label
			if item.HasBadge() {
				badge = ui.FormatCount(*item.Badge)
			}
		}
		tbl.AddRow(string(v), entry, badge)
	}
	fmt.Fprint(w, tbl.Render(styles))
}

func renderFrame(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer logging.CloseAll()

	m := a.newShell(nil, nil)
	defer m.Close()

	if renderTab != "" {
		tab, err := social.ParseProfileTab(renderTab)
		if err != nil {
			return err
		}
		if m.Profile() == nil {
			return fmt.Errorf("--tab needs the profile view (got %s)", m.ActiveView())
		}
		m.Profile().SelectTab(tab)
	}

	m.Update(tea.WindowSizeMsg{Width: renderWidth, Height: renderHeight})
	logger.Debug("rendering frame",
		zap.String("view", string(m.ActiveView())),
		zap.Int("width", renderWidth),
		zap.Int("height", renderHeight))

	fmt.Fprintln(cmd.OutOrStdout(), m.View())
	return nil
}

// initConfig writes the defaults, with any flag overrides, to the config path.
func initConfig(cmd *cobra.Command, args []string) error {
	path := resolvedConfigPath()
	if _, err := os.Stat(path); err == nil && !forceInit {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	applyFlags(cfg)
	// --verbose only affects this run.
	cfg.Logging.DebugMode = false
	cfg.Logging.Level = config.DefaultConfig().Logging.Level
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(path); err != nil {
		return err
	}
	logger.Debug("config written", zap.String("path", path))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
