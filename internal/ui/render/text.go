// Package render provides text layout helpers for the TUI and the CLI
// listings.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters and invalid UTF-8 from tag text so a
// bad ID3 frame cannot break the terminal layout. Tabs and non-breaking
// spaces become plain spaces.
func Sanitize(s string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r == '\t', r == '\u00a0':
			return ' '
		case r == unicode.ReplacementChar, unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
	return clean
}

// Truncate shortens s to maxWidth cells, ending in "…" when cut. Styled
// input keeps its escape sequences.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// Pad fills s with spaces up to width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Fit sanitizes, truncates and pads s to exactly width cells.
func Fit(s string, width int) string {
	return Pad(Truncate(Sanitize(s), width), width)
}

// Row places left and right at the edges of a width-cell line, keeping at
// least one space between them.
func Row(left, right string, width int) string {
	gap := max(width-ansi.StringWidth(left)-ansi.StringWidth(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
