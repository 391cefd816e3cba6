// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants for rail and content sizing
const (
	// Navigation rail
	DefaultSidebarWidth = 26
	MinSidebarWidth     = 18
	SidebarPadding      = 2 // horizontal padding inside the rail
	SidebarBorder       = 1 // right border

	// Content area
	ContentPaddingH = 2
	ContentPaddingV = 1
	FooterHeight    = 1

	// Gallery
	GalleryColumns          = 3
	DefaultGalleryCellWidth = 18
	MinGalleryCellWidth     = 10
	GalleryCellHeight       = 3 // inner lines, borders excluded
	CellBorderWidth         = 2

	// Highlight strip
	HighlightRingWidth = 8 // inner width of a ring, also the title truncation width
	HighlightGap       = 1

	// Responsive breakpoints
	MinimumTerminalWidth  = 60
	MinimumTerminalHeight = 20
	CompactModeWidth      = 90
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	SidebarWidth   int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size.
// Below CompactModeWidth the rail collapses to MinSidebarWidth so the gallery
// keeps all three columns.
func NewLayoutConfig(width, height, sidebarWidth int) LayoutConfig {
	l := LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		SidebarWidth:   sidebarWidth,
		IsCompact:      width < CompactModeWidth,
	}
	if l.IsCompact || l.SidebarWidth < MinSidebarWidth {
		l.SidebarWidth = MinSidebarWidth
	}
	return l
}

// ContentWidth returns the width left for the active view
func (l LayoutConfig) ContentWidth() int {
	w := l.TerminalWidth - l.SidebarWidth - SidebarBorder
	if w < 0 {
		return 0
	}
	return w
}

// ContentHeight returns the height left for the active view
func (l LayoutConfig) ContentHeight() int {
	h := l.TerminalHeight - FooterHeight
	if h < 0 {
		return 0
	}
	return h
}

// PageWidth returns the width inside the content padding
func (l LayoutConfig) PageWidth() int {
	w := l.ContentWidth() - 2*ContentPaddingH
	if w < 0 {
		return 0
	}
	return w
}

// PageHeight returns the height inside the content padding
func (l LayoutConfig) PageHeight() int {
	h := l.ContentHeight() - 2*ContentPaddingV
	if h < 0 {
		return 0
	}
	return h
}

// GalleryCellWidthFor fits three cells into pageWidth, capped at preferred.
// pageWidth is already inside the content padding.
func GalleryCellWidthFor(pageWidth, preferred int) int {
	if preferred <= 0 {
		preferred = DefaultGalleryCellWidth
	}
	fit := pageWidth/GalleryColumns - CellBorderWidth
	if fit < preferred {
		preferred = fit
	}
	if preferred < MinGalleryCellWidth {
		preferred = MinGalleryCellWidth
	}
	return preferred
}
