package ui

import (
	"strconv"
	"strings"
	"time"

	"pixelgram/internal/logging"
	"pixelgram/internal/social"

	"github.com/charmbracelet/lipgloss"
)

// GalleryVariant selects the gallery decoration.
type GalleryVariant int

const (
	// VariantPlain renders cells without decoration.
	VariantPlain GalleryVariant = iota
	// VariantTagged marks every cell with the tagged glyph.
	VariantTagged
)

func (v GalleryVariant) String() string {
	if v == VariantTagged {
		return "tagged"
	}
	return "plain"
}

// Glyphs used on gallery cells.
const (
	TagGlyph         = "@"
	LikeGlyph        = "♥"
	CommentGlyph     = "✎"
	ImageGlyph       = "▣"
	EmptyGalleryText = "No posts yet"
)

// Renders slower than this are logged.
const defaultRenderThreshold = 20 * time.Millisecond

// GalleryCell is the render-ready description of one grid cell.
type GalleryCell struct {
	PostID   string
	ImageRef string
	Likes    string
	Comments string
	Tagged   bool
	Hovered  bool
}

// GalleryOptions tunes a gallery render.
type GalleryOptions struct {
	CellWidth int
	// Hovered is the index of the hovered cell, or -1.
	Hovered int
	Styles  Styles
	Zones   *Zones
}

// GalleryCells maps posts to cells in input order.
func GalleryCells(posts []social.PostSummary, variant GalleryVariant, hovered int) []GalleryCell {
	cells := make([]GalleryCell, len(posts))
	for i, p := range posts {
		cells[i] = GalleryCell{
			PostID:   p.ID,
			ImageRef: p.ImageRef,
			Likes:    FormatCount(p.Likes),
			Comments: FormatCount(p.Comments),
			Tagged:   variant == VariantTagged,
			Hovered:  i == hovered,
		}
	}
	return cells
}

// CellZone returns the zone ID for the gallery cell at index i.
func CellZone(i int) string { return "cell:" + strconv.Itoa(i) }

// RenderGallery draws posts as a three-column grid. An empty list renders the
// empty state. Output is memoised on every input that affects it.
func RenderGallery(posts []social.PostSummary, variant GalleryVariant, opts GalleryOptions) string {
	if len(posts) == 0 {
		return opts.Styles.EmptyState.Render(EmptyGalleryText)
	}
	if opts.CellWidth < MinGalleryCellWidth {
		opts.CellWidth = MinGalleryCellWidth
	}

	key := galleryKey(posts, variant, opts)
	return DefaultRenderCache.GetOrCompute(key, func() string {
		timer := logging.StartTimer(logging.CategoryGallery, "render")
		defer timer.StopWithThreshold(defaultRenderThreshold)
		return renderGallery(GalleryCells(posts, variant, opts.Hovered), opts)
	})
}

func galleryKey(posts []social.PostSummary, variant GalleryVariant, opts GalleryOptions) uint64 {
	inputs := make([]interface{}, 0, len(posts)*4+6)
	inputs = append(inputs, int(variant), opts.CellWidth, opts.Hovered, opts.Styles.Theme.IsDark, opts.Zones.Enabled())
	if opts.Zones != nil {
		inputs = append(inputs, opts.Zones.prefix)
	}
	for _, p := range posts {
		inputs = append(inputs, p.ID, p.ImageRef, p.Likes, p.Comments)
	}
	return ComputeKey(inputs...)
}

func renderGallery(cells []GalleryCell, opts GalleryOptions) string {
	rows := make([]string, 0, (len(cells)+GalleryColumns-1)/GalleryColumns)
	for start := 0; start < len(cells); start += GalleryColumns {
		end := start + GalleryColumns
		if end > len(cells) {
			end = len(cells)
		}
		parts := make([]string, 0, GalleryColumns)
		for i := start; i < end; i++ {
			parts = append(parts, opts.Zones.Mark(CellZone(i), renderCell(cells[i], opts)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(c GalleryCell, opts GalleryOptions) string {
	s := opts.Styles
	inner := opts.CellWidth

	lines := make([]string, 0, GalleryCellHeight)
	if c.Tagged {
		lines = append(lines, s.CellTag.Render(TagGlyph))
	} else {
		lines = append(lines, "")
	}

	style := s.Cell
	if c.Hovered {
		style = s.CellHovered
		lines = append(lines,
			Truncate(LikeGlyph+" "+c.Likes, inner),
			Truncate(CommentGlyph+" "+c.Comments, inner),
		)
	} else {
		lines = append(lines, ImageGlyph, Truncate(c.PostID, inner))
	}

	return style.Width(inner).Height(GalleryCellHeight).Render(strings.Join(lines, "\n"))
}
