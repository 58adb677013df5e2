package app

import (
	"strings"

	"github.com/llehouerou/jamp/internal/ui"
	"github.com/llehouerou/jamp/internal/ui/headerbar"
	"github.com/llehouerou/jamp/internal/ui/playerbar"
	"github.com/llehouerou/jamp/internal/ui/render"
	"github.com/llehouerou/jamp/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	width := ui.ClampWidth(m.Width)

	var b strings.Builder

	b.WriteString(headerbar.Render(m.Source, width))
	b.WriteString("\n")

	volume, muted := 1.0, false
	if m.Volume != nil {
		volume, muted = m.Volume.Volume(), m.Volume.Muted()
	}
	b.WriteString(playerbar.Render(playerbar.NewState(m.snapshot, volume, muted), width))
	b.WriteString("\n")

	if m.Prompting {
		b.WriteString(" " + m.Prompt.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus(width))
	b.WriteString("\n")

	if m.ShowHelp {
		b.WriteString(m.Help.View())
		b.WriteString("\n")
	}

	b.WriteString(renderFooter(width))
	return b.String()
}

func (m Model) renderStatus(width int) string {
	s := styles.T().S()
	switch {
	case m.ErrorMsg != "":
		return " " + s.Error.Render(render.Truncate(render.Sanitize(m.ErrorMsg), width-1))
	case m.StatusMsg != "":
		return " " + s.Muted.Render(render.Truncate(render.Sanitize(m.StatusMsg), width-1))
	}
	return ""
}

func renderFooter(width int) string {
	hint := "space play/pause · s stop · n/p next/prev · ←/→ seek · o open · ? help · q quit"
	return " " + styles.T().S().Subtle.Render(render.Truncate(hint, width-1))
}
