package ui

import (
	"fmt"
	"strings"
	"testing"

	"pixelgram/internal/social"
)

func samplePosts(n int) []social.PostSummary {
	out := make([]social.PostSummary, n)
	for i := range out {
		out[i] = social.PostSummary{
			ID:       fmt.Sprintf("post-%d", i+1),
			ImageRef: fmt.Sprintf("img/%d.jpg", i+1),
			Likes:    uint(1000 + i),
			Comments: uint(10 + i),
		}
	}
	return out
}

func galleryOpts(hovered int) GalleryOptions {
	return GalleryOptions{
		CellWidth: DefaultGalleryCellWidth,
		Hovered:   hovered,
		Styles:    NewStyles(LightTheme()),
	}
}

func TestGalleryCellsPreserveOrder(t *testing.T) {
	posts := samplePosts(5)
	cells := GalleryCells(posts, VariantPlain, -1)
	if len(cells) != len(posts) {
		t.Fatalf("expected %d cells, got %d", len(posts), len(cells))
	}
	for i, c := range cells {
		if c.PostID != posts[i].ID {
			t.Errorf("cell %d: got %s, want %s", i, c.PostID, posts[i].ID)
		}
		if c.Tagged || c.Hovered {
			t.Errorf("cell %d: unexpected decoration %+v", i, c)
		}
	}
}

func TestGalleryCellsHoverAndTagged(t *testing.T) {
	posts := samplePosts(4)
	cells := GalleryCells(posts, VariantTagged, 2)
	for i, c := range cells {
		if !c.Tagged {
			t.Errorf("cell %d should be tagged", i)
		}
		if c.Hovered != (i == 2) {
			t.Errorf("cell %d hovered = %v", i, c.Hovered)
		}
	}
	if cells[0].Likes != "1,000" {
		t.Fatalf("expected formatted likes, got %q", cells[0].Likes)
	}
}

func TestRenderGalleryOrder(t *testing.T) {
	posts := samplePosts(6)
	out := RenderGallery(posts, VariantPlain, galleryOpts(-1))

	if got := strings.Count(out, ImageGlyph); got != len(posts) {
		t.Fatalf("expected %d cells, got %d", len(posts), got)
	}
	last := -1
	for _, p := range posts {
		idx := strings.Index(out, p.ID)
		if idx < 0 {
			t.Fatalf("post %s missing from output", p.ID)
		}
		if idx < last {
			t.Fatalf("post %s rendered out of order", p.ID)
		}
		last = idx
	}
}

func TestRenderGalleryEmpty(t *testing.T) {
	out := RenderGallery(nil, VariantPlain, galleryOpts(-1))
	if !strings.Contains(out, EmptyGalleryText) {
		t.Fatalf("expected empty state, got %q", out)
	}
	if strings.Contains(out, ImageGlyph) {
		t.Fatalf("empty gallery should have no cells")
	}
}

func TestRenderGalleryHoverOverlay(t *testing.T) {
	posts := []social.PostSummary{
		{ID: "p-1", Likes: 2567, Comments: 89},
		{ID: "p-2", Likes: 1893, Comments: 45},
	}

	plain := RenderGallery(posts, VariantPlain, galleryOpts(-1))
	if strings.Contains(plain, LikeGlyph) || strings.Contains(plain, CommentGlyph) {
		t.Fatalf("overlay should only appear on hover")
	}

	hovered := RenderGallery(posts, VariantPlain, galleryOpts(0))
	if !strings.Contains(hovered, LikeGlyph+" 2,567") {
		t.Fatalf("expected likes overlay, got:\n%s", hovered)
	}
	if !strings.Contains(hovered, CommentGlyph+" 89") {
		t.Fatalf("expected comments overlay, got:\n%s", hovered)
	}
	if strings.Contains(hovered, "1,893") {
		t.Fatalf("only the hovered cell should show its overlay")
	}
}

func TestRenderGalleryTaggedGlyphOnEveryCell(t *testing.T) {
	posts := samplePosts(3)
	for _, hovered := range []int{-1, 1} {
		out := RenderGallery(posts, VariantTagged, galleryOpts(hovered))
		if got := strings.Count(out, TagGlyph); got != len(posts) {
			t.Fatalf("hovered=%d: expected %d tag glyphs, got %d", hovered, len(posts), got)
		}
	}

	plain := RenderGallery(posts, VariantPlain, galleryOpts(-1))
	if strings.Contains(plain, TagGlyph) {
		t.Fatalf("plain variant should not show the tag glyph")
	}
}

func TestRenderGalleryMemoised(t *testing.T) {
	posts := samplePosts(2)
	opts := galleryOpts(-1)
	opts.CellWidth = 17 // unique key for this test

	first := RenderGallery(posts, VariantPlain, opts)
	hitsBefore, _ := DefaultRenderCache.Stats()
	second := RenderGallery(posts, VariantPlain, opts)
	hitsAfter, _ := DefaultRenderCache.Stats()

	if first != second {
		t.Fatalf("cached render differs from first render")
	}
	if hitsAfter != hitsBefore+1 {
		t.Fatalf("expected one cache hit, got %d", hitsAfter-hitsBefore)
	}
}
