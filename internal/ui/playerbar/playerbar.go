// Package playerbar renders the now-playing panel: title and artist, the
// phase symbol, a progress bar and the elapsed time.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/jamp/internal/icons"
	"github.com/llehouerou/jamp/internal/playback"
	"github.com/llehouerou/jamp/internal/ui"
	"github.com/llehouerou/jamp/internal/ui/render"
	"github.com/llehouerou/jamp/internal/ui/styles"
)

// Height is the rendered height: two content rows plus the border.
const Height = 2 + ui.BorderHeight

// State holds everything needed to render the player bar.
type State struct {
	Phase       playback.Phase
	Title       string
	Artist      string
	Elapsed     time.Duration
	Duration    time.Duration
	Frame       int
	TotalFrames int
	Index       int // playlist position, -1 without a playlist
	Total       int
	Volume      float64
	Muted       bool
}

// NewState builds a State from an engine snapshot and the output volume.
func NewState(s playback.Snapshot, volume float64, muted bool) State {
	st := State{
		Phase:  s.Phase,
		Index:  s.PlaylistIndex,
		Total:  s.PlaylistLen,
		Volume: volume,
		Muted:  muted,
	}
	if s.Track == nil {
		return st
	}
	st.Title = s.Track.Title
	st.Artist = s.Track.Artist
	st.Duration = s.Track.Duration
	st.TotalFrames = s.Track.TotalFrames
	st.Frame = s.EstimatedFrame
	st.Elapsed = min(s.Elapsed, s.Track.Duration)
	return st
}

// Render returns the player bar for the given terminal width.
func Render(s State, width int) string {
	inner := max(width-4, 0) // border and padding

	var lines [2]string
	if s.Phase == playback.PhaseIdle {
		lines[0] = styles.T().S().Muted.Render("No track loaded")
		lines[1] = styles.T().S().Subtle.Render("Press o to open a file or playlist")
	} else {
		lines[0] = headerLine(s, inner)
		lines[1] = progressLine(s, inner)
	}

	return styles.T().S().Panel.
		Padding(0, 1).
		Width(max(width-2, 0)).
		Render(lines[0] + "\n" + lines[1])
}

func headerLine(s State, width int) string {
	right := volumeLabel(s.Volume, s.Muted)
	if s.Index >= 0 && s.Total > 0 {
		right = fmt.Sprintf("%d/%d   %s", s.Index+1, s.Total, right)
	}
	right = styles.T().S().Muted.Render(right)

	avail := max(width-lipgloss.Width(right)-1, 0)
	title := render.Sanitize(s.Title)
	artist := render.Sanitize(s.Artist)

	left := styles.T().S().Title.Render(render.Truncate(title, avail))
	if rest := avail - lipgloss.Width(title) - 3; rest > 0 && artist != "" {
		left += styles.T().S().Muted.Render(" · " + render.Truncate(artist, rest))
	}
	return render.Row(left, right, width)
}

func progressLine(s State, width int) string {
	status := phaseSymbol(s.Phase)
	timeStr := fmt.Sprintf("%s / %s", formatDuration(s.Elapsed), formatDuration(s.Duration))

	barWidth := width - lipgloss.Width(status) - lipgloss.Width(timeStr) - 4
	if barWidth < ui.MinProgressBarWidth {
		return render.Row(status, timeStr, width)
	}
	return status + "  " + ProgressBar(s.Frame, s.TotalFrames, barWidth) + "  " + timeStr
}

// ProgressBar renders frame out of total as a bar of width cells.
func ProgressBar(frame, total, width int) string {
	var ratio float64
	if total > 0 {
		ratio = min(max(float64(frame)/float64(total), 0), 1)
	}
	filled := int(float64(width) * ratio)

	fill := lipgloss.NewStyle().Foreground(styles.T().Primary)
	empty := styles.T().S().Subtle
	return fill.Render(strings.Repeat("━", filled)) + empty.Render(strings.Repeat("─", width-filled))
}

func phaseSymbol(p playback.Phase) string {
	switch p {
	case playback.PhasePlaying:
		return styles.T().S().Playing.Render(icons.Playing())
	case playback.PhasePaused:
		return styles.T().S().Paused.Render(icons.Paused())
	case playback.PhaseStopped:
		return styles.T().S().Muted.Render(icons.Stopped())
	case playback.PhaseFinished:
		return styles.T().S().Muted.Render(icons.Finished())
	case playback.PhaseIdle:
	}
	return " "
}

func volumeLabel(volume float64, muted bool) string {
	if muted {
		return icons.Muted() + " muted"
	}
	return fmt.Sprintf("vol %3d%%", int(volume*100+0.5))
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
