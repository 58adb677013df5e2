package app

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/jamp/internal/playlist"
	"github.com/llehouerou/jamp/internal/state"
)

// historyTimeout bounds the recent-history write after a load.
const historyTimeout = 2 * time.Second

// WatchServiceEvents returns a command that waits for the next engine event.
// It listens on all subscription channels and converts the event to a
// tea.Msg. The watcher must be re-armed after every PlaybackMessage.
func (m Model) WatchServiceEvents() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	sub := m.sub
	return func() tea.Msg {
		select {
		case e := <-sub.SongChanged:
			return SongChangedMsg(e)
		case e := <-sub.StateChanged:
			return StateChangedMsg(e)
		case e := <-sub.PositionTicked:
			return PositionMsg(e)
		case e := <-sub.Error:
			return ServiceErrorMsg(e)
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WatchStderr returns a command that waits for stderr output from C libraries.
func (m Model) WatchStderr() tea.Cmd {
	if m.Stderr == nil {
		return nil
	}
	return waitForChannel(m.Stderr.Lines(), func(line string, ok bool) tea.Msg {
		if !ok {
			return nil // capture stopped
		}
		return StderrMsg{Line: line}
	})
}

// IsPlaylistPath reports whether path names a playlist file rather than a
// track.
func IsPlaylistPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".txt")
}

// cleanPath strips the quotes terminals add around dropped files.
func cleanPath(path string) string {
	path = strings.TrimSpace(path)
	if len(path) >= 2 {
		if q := path[0]; (q == '\'' || q == '"') && path[len(path)-1] == q {
			path = path[1 : len(path)-1]
		}
	}
	return path
}

// LoadPathCmd loads path into the engine off the UI goroutine and records
// it in the recent history.
func (m Model) LoadPathCmd(path string) tea.Cmd {
	path = cleanPath(path)
	svc := m.Service
	history := m.History
	log := m.log

	return func() tea.Msg {
		res := LoadResultMsg{Path: path, Kind: state.KindTrack}
		if IsPlaylistPath(path) {
			res.Kind = state.KindPlaylist
			res.Err = svc.LoadPlaylistFile(path)
		} else {
			res.Err = svc.LoadFile(path)
		}
		if res.Err != nil {
			log.WithError(res.Err).WithField("path", path).Warn("load failed")
			return res
		}

		item := state.RecentItem{Path: path, Kind: res.Kind}
		res.Tracks = max(svc.PlaylistLen(), 1)
		if res.Kind == state.KindPlaylist {
			item.TrackCount = res.Tracks
		} else if t := svc.CurrentTrack(); t != nil {
			item.Title = t.Title
			item.Artist = t.Artist
		}

		if history != nil {
			ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
			defer cancel()
			if err := history.AddRecent(ctx, item); err != nil {
				log.WithError(err).Warn("record recent item")
				res.HistoryErr = err
			}
		}
		return res
	}
}

// AnnounceCmd shows a desktop notification for the new song.
func (m Model) AnnounceCmd(track playlist.Track, index, total int) tea.Cmd {
	if m.Announcer == nil {
		return nil
	}
	a := m.Announcer
	log := m.log
	return func() tea.Msg {
		if err := a.Announce(track, index, total); err != nil {
			log.WithError(err).Debug("song notification failed")
		}
		return nil
	}
}
