// Package textutil provides width-aware text helpers for the status bar and
// other single-row renderings.
package textutil

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is appended when text is cut to fit.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
// ANSI escape sequences take no columns.
func VisualWidth(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts plain text to at most maxWidth columns, ending in an
// ellipsis when anything was removed.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= runewidth.StringWidth(TruncateEllipsis) {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// PadRight pads plain text with spaces to exactly width columns,
// truncating if it is wider.
func PadRight(s string, width int) string {
	if runewidth.StringWidth(s) >= width {
		return Truncate(s, width)
	}
	return runewidth.FillRight(s, width)
}

// Spread places left and right at the two edges of a row width columns wide.
// Both may contain ANSI styling. When they do not fit, right wins and left
// is cut.
func Spread(left, right string, width int) string {
	rw := VisualWidth(right)
	if rw >= width {
		return ansi.Truncate(right, width, "")
	}
	avail := width - rw
	lw := VisualWidth(left)
	if lw > avail {
		left = ansi.Truncate(left, avail, TruncateEllipsis)
		lw = VisualWidth(left)
	}
	return left + runewidth.FillRight("", avail-lw) + right
}
