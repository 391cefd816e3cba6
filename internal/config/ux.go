package config

import "fmt"

// Theme names accepted by ui.theme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// UIConfig holds user interface configuration.
type UIConfig struct {
	// Theme is light, dark, or auto (detect from the terminal)
	Theme string `json:"theme" yaml:"theme"`

	// SidebarWidth is the fixed width of the navigation rail in cells
	SidebarWidth int `json:"sidebar_width" yaml:"sidebar_width"`

	// GalleryCellWidth is the width of one gallery cell (3 per row)
	GalleryCellWidth int `json:"gallery_cell_width" yaml:"gallery_cell_width"`

	// Mouse enables click and hover tracking
	Mouse bool `json:"mouse" yaml:"mouse"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:            ThemeAuto,
		SidebarWidth:     26,
		GalleryCellWidth: 18,
		Mouse:            true,
	}
}

// Validate checks theme name and sizes.
func (c *UIConfig) Validate() error {
	switch c.Theme {
	case ThemeLight, ThemeDark, ThemeAuto, "":
	default:
		return fmt.Errorf("invalid ui.theme: %s (valid: light, dark, auto)", c.Theme)
	}
	if c.SidebarWidth <= 0 {
		return fmt.Errorf("ui.sidebar_width must be positive, got %d", c.SidebarWidth)
	}
	if c.GalleryCellWidth <= 0 {
		return fmt.Errorf("ui.gallery_cell_width must be positive, got %d", c.GalleryCellWidth)
	}
	return nil
}
