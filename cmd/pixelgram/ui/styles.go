// Package ui provides the visual components of the pixelgram terminal client:
// the navigation rail, the profile page and its gallery, and the shared theme.
// Uses the pixelgram brand color palette with light/dark mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette based on pixelgram brand guidelines
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#fafafa")
	LightForeground = lipgloss.Color("#262626")
	LightPrimary    = lipgloss.Color("#c13584") // Magenta
	LightAccent     = lipgloss.Color("#f56040") // Sunset orange
	LightSecondary  = lipgloss.Color("#efefef")
	LightMuted      = lipgloss.Color("#8e8e8e")
	LightBorder     = lipgloss.Color("#dbdbdb")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#121212")
	DarkForeground = lipgloss.Color("#f5f5f5")
	DarkPrimary    = lipgloss.Color("#e1306c") // Pink (brighter on dark)
	DarkAccent     = lipgloss.Color("#fcaf45") // Amber
	DarkSecondary  = lipgloss.Color("#1f1f1f")
	DarkMuted      = lipgloss.Color("#a8a8a8")
	DarkBorder     = lipgloss.Color("#363636")
	DarkCard       = lipgloss.Color("#1a1a1a")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#ed4956")
	Success     = lipgloss.Color("#58c322")
	Verified    = lipgloss.Color("#0095f6")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// DetectTheme auto-detects based on terminal or returns light mode
func DetectTheme() Theme {
	// Format is usually "foreground;background"
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				// 0-6 and 8 (dark grey) are likely dark backgrounds
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("PIXELGRAM_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// ThemeByName resolves a configured theme name; "auto" and unknown names detect.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Footer  lipgloss.Style
	Content lipgloss.Style
	Sidebar lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Navigation rail
	Brand        lipgloss.Style
	NavItem      lipgloss.Style
	NavActive    lipgloss.Style
	NavCursor    lipgloss.Style
	Badge        lipgloss.Style
	BadgeCompact lipgloss.Style
	Danger       lipgloss.Style

	// Profile
	Avatar      lipgloss.Style
	VerifiedTag lipgloss.Style
	Counter     lipgloss.Style
	Ring        lipgloss.Style
	RingNew     lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style

	// Gallery
	Cell        lipgloss.Style
	CellHovered lipgloss.Style
	CellTag     lipgloss.Style
	EmptyState  lipgloss.Style

	// Components
	Divider lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		// Layout styles
		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Sidebar: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(theme.Border).
			Padding(1, 1),

		// Text styles
		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		// Navigation rail
		Brand: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		NavItem: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(0, 1),

		NavActive: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, 1),

		NavCursor: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Badge: lipgloss.NewStyle().
			Background(Destructive).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		BadgeCompact: lipgloss.NewStyle().
			Background(lipgloss.Color("#ffffff")).
			Foreground(theme.Primary).
			Bold(true),

		Danger: lipgloss.NewStyle().
			Foreground(Destructive).
			Padding(0, 1),

		// Profile
		Avatar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		VerifiedTag: lipgloss.NewStyle().
			Foreground(Verified).
			Bold(true),

		Counter: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Ring: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Align(lipgloss.Center),

		RingNew: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Muted).
			Foreground(theme.Muted).
			Align(lipgloss.Center),

		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		TabActive: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			Underline(true).
			Padding(0, 2),

		// Gallery
		Cell: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Muted).
			Align(lipgloss.Center),

		CellHovered: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Primary).
			Foreground(theme.Foreground).
			Bold(true).
			Align(lipgloss.Center),

		CellTag: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		EmptyState: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true).
			Padding(1, 2),

		// Components
		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// DefaultStyles returns styles with the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// Logo returns the pixelgram brand block
func Logo(s Styles) string {
	return s.Brand.Render("◈ pixelgram")
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		width = 1
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
