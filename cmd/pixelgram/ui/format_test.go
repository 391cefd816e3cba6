package ui

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestFormatCount(t *testing.T) {
	cases := []struct {
		in   uint
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{2567, "2,567"},
		{12453, "12,453"},
		{1234567, "1,234,567"},
	}
	for _, tc := range cases {
		if got := FormatCount(tc.in); got != tc.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Food", 8); got != "Food" {
		t.Fatalf("short input should be unchanged, got %q", got)
	}

	long := "Street Photography"
	got := Truncate(long, 8)
	if runewidth.StringWidth(got) > 8 {
		t.Fatalf("truncated width %d exceeds 8: %q", runewidth.StringWidth(got), got)
	}
	if []rune(got)[len([]rune(got))-1] != '…' {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
	if long != "Street Photography" {
		t.Fatalf("input was modified")
	}

	if got := Truncate("anything", 0); got != "" {
		t.Fatalf("zero width should yield empty string, got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Fatalf("PadRight = %q", got)
	}
}
