// Package headerbar renders the single-line application header.
package headerbar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/jamp/internal/ui/render"
	"github.com/llehouerou/jamp/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const (
	appName = "JAmp"
	tagline = "just another mp3 player"
)

// Render returns the header for the given width: the application name on the
// left and source, the loaded file or playlist, on the right. The tagline is
// dropped before the source when space runs out.
func Render(source string, width int) string {
	t := styles.T()
	s := t.S()

	title := " " + lipgloss.NewStyle().Bold(true).Render(styles.Gradient(appName, t.Primary, t.Secondary))
	if width < 20 {
		return title
	}

	right := ""
	if source != "" {
		right = s.Muted.Render(render.Truncate(render.Sanitize(source), width/2)) + " "
	}

	left := title
	full := title + s.Subtle.Render(" · "+tagline)
	if ansi.StringWidth(full)+ansi.StringWidth(right)+1 <= width {
		left = full
	}
	if right == "" {
		return left
	}
	return render.Row(left, right, width)
}
