package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/jamp/internal/playback"
	"github.com/llehouerou/jamp/internal/state"
)

// PlaybackMessage is implemented by messages converted from engine events.
// Each one re-arms the event watcher once handled.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// SongChangedMsg wraps an engine song change.
type SongChangedMsg playback.SongChange

func (SongChangedMsg) playbackMessage() {}

// StateChangedMsg wraps an engine phase change.
type StateChangedMsg playback.StateChange

func (StateChangedMsg) playbackMessage() {}

// PositionMsg wraps a position tick.
type PositionMsg playback.PositionTick

func (PositionMsg) playbackMessage() {}

// ServiceErrorMsg wraps an engine error event.
type ServiceErrorMsg playback.ErrorEvent

func (ServiceErrorMsg) playbackMessage() {}

// ServiceClosedMsg is sent once the engine has been closed.
type ServiceClosedMsg struct{}

// LoadResultMsg reports the outcome of loading a path from the prompt or
// the command line.
type LoadResultMsg struct {
	Path string
	Kind state.Kind
	// Tracks is the number of tracks loaded.
	Tracks int
	Err    error
	// HistoryErr is set when the load worked but could not be recorded.
	HistoryErr error
}

// StderrMsg carries a line written to stderr by the audio backend.
type StderrMsg struct {
	Line string
}
