// Package testutil provides helpers for asserting on rendered TUI output.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared
// as plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the visual width of s in terminal cells.
func MeasureWidth(s string) int {
	return ansi.StringWidth(s)
}

// Lines returns the plain-text lines of output, without trailing blank lines.
func Lines(output string) []string {
	lines := strings.Split(StripANSI(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// FindLine returns the first plain-text line containing substr, or "".
func FindLine(output, substr string) string {
	for _, line := range Lines(output) {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// MaxLineWidth returns the width of the widest line of output.
func MaxLineWidth(output string) int {
	widest := 0
	for line := range strings.SplitSeq(output, "\n") {
		widest = max(widest, MeasureWidth(line))
	}
	return widest
}
