package playback

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/llehouerou/jamp/internal/playlist"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()

		sub.sendSong(SongChange{Track: playlist.Track{Path: "/a.mp3"}, Index: 1})
		sub.sendState(StateChange{Previous: PhaseStopped, Current: PhasePlaying})
		sub.sendPosition(PositionTick{Frame: 42, Elapsed: time.Second})
		sub.sendError(ErrorEvent{Kind: KindDecode, Path: "/a.mp3"})

		s := <-sub.SongChanged
		if s.Index != 1 || s.Track.Path != "/a.mp3" {
			t.Errorf("SongChanged = %+v, want index 1 /a.mp3", s)
		}

		e := <-sub.StateChanged
		if e.Current != PhasePlaying {
			t.Errorf("StateChanged.Current = %v, want Playing", e.Current)
		}

		pos := <-sub.PositionTicked
		if pos.Frame != 42 || pos.Elapsed != time.Second {
			t.Errorf("PositionTicked = %+v, want {42 1s}", pos)
		}

		ev := <-sub.Error
		if ev.Kind != KindDecode {
			t.Errorf("Error.Kind = %v, want Decode", ev.Kind)
		}
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription()
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	for i := range eventBufferSize + 5 {
		sub.sendPosition(PositionTick{Frame: i})
	}

	got := drain(sub.PositionTicked)
	if len(got) != eventBufferSize {
		t.Errorf("received %d events, want %d (buffer size)", len(got), eventBufferSize)
	}
	if got[0].Frame != 0 {
		t.Errorf("first tick frame = %d, want 0 (newest are dropped)", got[0].Frame)
	}
}
