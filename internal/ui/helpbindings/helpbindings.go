// Package helpbindings renders the scrollable key bindings panel.
package helpbindings

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/jamp/internal/keymap"
	"github.com/llehouerou/jamp/internal/ui"
	"github.com/llehouerou/jamp/internal/ui/render"
	"github.com/llehouerou/jamp/internal/ui/styles"
)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	"global",
	"playback",
	"output",
}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global":   "Global",
	"playback": "Playback",
	"output":   "Output",
}

// Model holds the state for the help panel.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a help panel listing every binding category.
func New() Model {
	var m Model
	for _, ctx := range categoryOrder {
		m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
	}
	return m
}

// ScrollDown moves the view one line down, stopping at the last page.
func (m *Model) ScrollDown() {
	if m.scrollOffset < m.maxScroll() {
		m.scrollOffset++
	}
}

// ScrollUp moves the view one line up.
func (m *Model) ScrollUp() {
	if m.scrollOffset > 0 {
		m.scrollOffset--
	}
}

// ScrollOffset returns the first visible content line.
func (m Model) ScrollOffset() int {
	return m.scrollOffset
}

// View renders the visible part of the panel. A zero height shows
// everything.
func (m Model) View() string {
	lines := strings.Split(m.buildContent(), "\n")

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := lines[start:end]

	if m.Width() > 0 {
		for i, line := range visible {
			visible[i] = render.Truncate(line, m.Width())
		}
	}

	footer := styles.T().S().Subtle.Render(m.buildFooter())
	return strings.Join(visible, "\n") + "\n" + footer
}

func (m Model) buildContent() string {
	var sb strings.Builder

	s := styles.T().S()
	keyStyle := lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true)

	// Find max key width for alignment
	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keyString(b)))
	}

	currentContext := ""
	for _, b := range m.bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(" " + s.Title.Render(label))
			sb.WriteString("\n")
			sb.WriteString(" " + s.Subtle.Render(strings.Repeat("─", maxKeyWidth+15)))
			sb.WriteString("\n")
			currentContext = b.Context
		}

		sb.WriteString(" " + keyStyle.Render(render.Pad(keyString(b), maxKeyWidth)))
		sb.WriteString("  ")
		sb.WriteString(s.Muted.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// keyString joins the keys of b, naming the space bar once.
func keyString(b keymap.Binding) string {
	keys := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		if k == " " {
			continue
		}
		keys = append(keys, k)
	}
	return strings.Join(keys, ", ")
}

func (m Model) buildFooter() string {
	if m.maxScroll() == 0 {
		return " ?/esc close"
	}
	return " j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	if m.Height() <= 0 {
		return m.totalLines()
	}
	// One line for the footer
	return max(m.Height()-1, 1)
}

func (m Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m Model) maxScroll() int {
	total := m.totalLines()
	visible := m.visibleHeight()
	if total <= visible {
		return 0
	}
	return total - visible
}
