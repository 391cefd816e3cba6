package ui

import (
	"strings"
	"testing"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("PIXELGRAM_DARK_MODE", "1")
	dark := DetectTheme()
	if !dark.IsDark {
		t.Fatalf("expected dark theme when PIXELGRAM_DARK_MODE=1")
	}

	t.Setenv("PIXELGRAM_DARK_MODE", "")
	light := DetectTheme()
	if light.IsDark {
		t.Fatalf("expected light theme when PIXELGRAM_DARK_MODE is unset")
	}

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme for black terminal background")
	}
}

func TestThemeByName(t *testing.T) {
	if !ThemeByName("dark").IsDark {
		t.Fatalf("expected dark theme")
	}
	if ThemeByName("LIGHT").IsDark {
		t.Fatalf("expected light theme")
	}
}

func TestRenderDividerWidth(t *testing.T) {
	s := NewStyles(LightTheme())
	if got := strings.Count(s.RenderDivider(5), "─"); got != 5 {
		t.Fatalf("expected 5 divider runes, got %d", got)
	}
	if got := strings.Count(s.RenderDivider(0), "─"); got != 1 {
		t.Fatalf("expected minimum divider width of 1, got %d", got)
	}
}
