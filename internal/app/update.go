package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/jamp/internal/errmsg"
	"github.com/llehouerou/jamp/internal/icons"
	"github.com/llehouerou/jamp/internal/playback"
	"github.com/llehouerou/jamp/internal/state"
	"github.com/llehouerou/jamp/internal/ui"
	"github.com/llehouerou/jamp/internal/ui/headerbar"
	"github.com/llehouerou/jamp/internal/ui/playerbar"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if pm, ok := msg.(PlaybackMessage); ok {
		return m.handlePlaybackMsg(pm)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Prompt.Width = max(msg.Width-len(m.Prompt.Prompt)-4, 10)
		m.Help.SetSize(ui.ClampWidth(msg.Width), m.helpHeight())
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case LoadResultMsg:
		return m.handleLoadResult(msg)

	case StderrMsg:
		m.StatusMsg = msg.Line
		return m, m.WatchStderr()

	case ServiceClosedMsg:
		m.sub = nil
		return m, nil
	}

	if m.Prompting {
		var cmd tea.Cmd
		m.Prompt, cmd = m.Prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handlePlaybackMsg refreshes the snapshot for an engine event and re-arms
// the watcher.
func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	m.snapshot = m.Service.Snapshot()
	cmds := []tea.Cmd{m.WatchServiceEvents()}

	switch msg := msg.(type) {
	case SongChangedMsg:
		m.ErrorMsg = ""
		cmds = append(cmds, m.AnnounceCmd(msg.Track, msg.Index, m.snapshot.PlaylistLen))
	case StateChangedMsg:
		m.log.WithFields(logrus.Fields{
			"from": msg.Previous.String(),
			"to":   msg.Current.String(),
		}).Debug("phase changed")
	case ServiceErrorMsg:
		m.ErrorMsg = formatServiceError(playback.ErrorEvent(msg))
	case PositionMsg:
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleLoadResult(msg LoadResultMsg) (tea.Model, tea.Cmd) {
	m.snapshot = m.Service.Snapshot()
	if msg.Err != nil {
		m.ErrorMsg = errmsg.FormatWith(loadOp(msg.Kind), filepath.Base(msg.Path), msg.Err)
		return m, nil
	}

	m.ErrorMsg = ""
	if msg.HistoryErr != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpHistorySave, msg.HistoryErr)
	}
	name := filepath.Base(msg.Path)
	if msg.Kind == state.KindPlaylist {
		m.Source = icons.FormatPlaylist(name)
		m.StatusMsg = fmt.Sprintf("Loaded %s (%d tracks)", name, msg.Tracks)
	} else {
		m.Source = icons.FormatTrack(name)
		m.StatusMsg = "Loaded " + name
	}
	return m, nil
}

// helpHeight is the room left for the help panel below the fixed rows.
func (m Model) helpHeight() int {
	return max(m.Height-headerbar.Height-playerbar.Height-ui.StatusHeight, 3)
}

// openPrompt focuses the path prompt, prefilled with the default folder.
func (m *Model) openPrompt() tea.Cmd {
	m.Prompting = true
	m.ShowHelp = false
	m.Prompt.Reset()
	if m.DefaultFolder != "" {
		m.Prompt.SetValue(m.DefaultFolder + string(filepath.Separator))
		m.Prompt.CursorEnd()
	}
	m.Prompt.Focus()
	return textinput.Blink
}

func (m *Model) closePrompt() {
	m.Prompting = false
	m.Prompt.Blur()
	m.Prompt.Reset()
}

func loadOp(kind state.Kind) errmsg.Op {
	if kind == state.KindPlaylist {
		return errmsg.OpPlaylistLoad
	}
	return errmsg.OpTrackLoad
}

func formatServiceError(e playback.ErrorEvent) string {
	if errors.Is(e.Err, playback.ErrStopTimeout) {
		return "Audio output is not responding; position may be approximate"
	}
	if e.Path == "" {
		return errmsg.Format(e.Op, e.Err)
	}
	return errmsg.FormatWith(e.Op, filepath.Base(e.Path), e.Err)
}
