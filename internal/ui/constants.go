// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// DefaultWidth is used before the first window size message arrives.
	DefaultWidth = 80

	// MaxWidth caps the rendered width on wide terminals.
	MaxWidth = 100

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HeaderHeight is the space for the title line.
	HeaderHeight = 1

	// StatusHeight is the status line plus the footer hint.
	StatusHeight = 2

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5
)

// ClampWidth returns width bounded to MaxWidth, or DefaultWidth when unset.
func ClampWidth(width int) int {
	if width <= 0 {
		return DefaultWidth
	}
	return min(width, MaxWidth)
}
