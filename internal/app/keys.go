package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/jamp/internal/app/handler"
	"github.com/llehouerou/jamp/internal/keymap"
)

const (
	seekStep     = 5 * time.Second
	seekStepLong = 30 * time.Second
	volumeStep   = 0.05
)

// handleKeyMsg routes a key to the prompt while it is open, and to the
// action handlers otherwise.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Prompting {
		return m.handlePromptKey(msg)
	}

	key := msg.String()
	if m.Keys.Resolve(key) == keymap.ActionQuit {
		return m, tea.Quit
	}

	_, cmd := handler.Chain(key,
		m.handleGlobalKeys,
		m.handlePlaybackKeys,
		m.handleOutputKeys,
	)
	return m, cmd
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive // other keys go to the text input
	case tea.KeyEsc:
		m.closePrompt()
		return *m, nil
	case tea.KeyCtrlC:
		return *m, tea.Quit
	case tea.KeyEnter:
		path := strings.TrimSpace(m.Prompt.Value())
		m.closePrompt()
		if path == "" {
			return *m, nil
		}
		m.StatusMsg = "Loading " + path + "…"
		return *m, m.LoadPathCmd(path)
	}

	var cmd tea.Cmd
	m.Prompt, cmd = m.Prompt.Update(msg)
	return *m, cmd
}

// handleGlobalKeys handles open and help, and scrolls the help panel while
// it is shown.
func (m *Model) handleGlobalKeys(key string) handler.Result {
	switch m.Keys.Resolve(key) { //nolint:exhaustive // only handling global actions
	case keymap.ActionOpen:
		return handler.Handled(m.openPrompt())
	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp
		return handler.HandledNoCmd
	}
	if !m.ShowHelp {
		return handler.NotHandled
	}
	switch key {
	case "esc":
		m.ShowHelp = false
	case "j", "down":
		m.Help.ScrollDown()
	case "k", "up":
		m.Help.ScrollUp()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// handlePlaybackKeys handles space, s, n/p and seeking. Command errors come
// back as engine error events.
func (m *Model) handlePlaybackKeys(key string) handler.Result {
	switch m.Keys.Resolve(key) { //nolint:exhaustive // only handling playback actions
	case keymap.ActionPlayPause:
		_ = m.Service.Toggle()
	case keymap.ActionStop:
		_ = m.Service.Stop()
	case keymap.ActionNextTrack:
		_ = m.Service.Next()
	case keymap.ActionPrevTrack:
		_ = m.Service.Previous()
	case keymap.ActionSeekBack:
		m.handleSeek(-seekStep)
	case keymap.ActionSeekForward:
		m.handleSeek(seekStep)
	case keymap.ActionSeekBackXL:
		m.handleSeek(-seekStepLong)
	case keymap.ActionSeekForwardXL:
		m.handleSeek(seekStepLong)
	default:
		return handler.NotHandled
	}
	m.snapshot = m.Service.Snapshot()
	return handler.HandledNoCmd
}

// handleSeek seeks relative to the current position when a track is loaded.
func (m *Model) handleSeek(delta time.Duration) {
	if !m.Service.Phase().HasTrack() {
		return
	}
	_ = m.Service.SeekBy(delta)
}

// handleOutputKeys handles volume and mute.
func (m *Model) handleOutputKeys(key string) handler.Result {
	if m.Volume == nil {
		return handler.NotHandled
	}
	switch m.Keys.Resolve(key) { //nolint:exhaustive // only handling output actions
	case keymap.ActionVolumeUp:
		m.Volume.SetVolume(min(m.Volume.Volume()+volumeStep, 1))
	case keymap.ActionVolumeDown:
		m.Volume.SetVolume(max(m.Volume.Volume()-volumeStep, 0))
	case keymap.ActionMute:
		m.Volume.SetMuted(!m.Volume.Muted())
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}
