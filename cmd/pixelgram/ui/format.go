package ui

import (
	"strconv"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.English)

// FormatCount renders an engagement or follower count. Values of 1000 and
// above get locale thousands separators.
func FormatCount(n uint) string {
	if n < 1000 {
		return strconv.FormatUint(uint64(n), 10)
	}
	return countPrinter.Sprintf("%d", n)
}

// Truncate shortens s to at most width terminal cells, ending in "…" when
// anything was cut. The input is never modified.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads s with spaces to width cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
