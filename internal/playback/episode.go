package playback

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/jamp/internal/errmsg"
	"github.com/llehouerou/jamp/internal/player"
)

// episode is one decode goroutine and one ticker bound to an epoch token.
// frame and err are written once by the decode goroutine before done closes.
type episode struct {
	token  uint64
	stream player.Stream
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	frame  int
	err    error
}

func newEpisode(token uint64, stream player.Stream) *episode {
	ctx, cancel := context.WithCancel(context.Background())
	return &episode{
		token:  token,
		stream: stream,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// run blocks on the decoder, then reports. The report is published on done
// before the engine lock is taken, so a command holding the lock can wait
// for it.
func (e *Engine) run(ep *episode, start int) {
	frame, err := ep.stream.PlayFrom(start, player.Unbounded)
	if cerr := ep.stream.Close(); cerr != nil {
		e.log.WithError(cerr).Debug("close stream")
	}
	ep.frame, ep.err = frame, err
	close(ep.done)

	e.finish(ep)
}

// finish handles the end of an episode. Stale episodes are discarded.
func (e *Engine) finish(ep *episode) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || ep.token != e.epoch || e.ep != ep {
		e.log.WithField("epoch", ep.token).Debug("discard stale completion")
		return
	}
	e.ep = nil
	ep.cancel()

	if ep.err != nil {
		path := e.track.Path
		e.log.WithError(ep.err).WithField("path", path).Error("decode failed")
		e.resumeFrame = 0
		e.elapsed = 0
		e.setPhaseLocked(PhaseStopped)
		e.emitErrorLocked(errmsg.OpDecode, path, &DecodeError{Path: path, Err: ep.err})
		return
	}

	if ep.frame >= 0 {
		e.resumeFrame = ep.frame
	}
	e.setPhaseLocked(PhaseFinished)
	e.log.WithField("frame", ep.frame).Debug("finished")

	if e.list != nil && e.list.HasNext() {
		if err := e.stepLocked(1); err != nil {
			e.log.WithError(err).Warn("auto-advance")
		}
	}
}

// tick publishes position estimates until its episode is cancelled or
// superseded.
func (e *Engine) tick(ep *episode) {
	ticker := time.NewTicker(e.tickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ep.ctx.Done():
			return
		case now := <-ticker.C:
			if !e.advanceClock(ep.token, now.Sub(last)) {
				return
			}
			last = now
		}
	}
}

// advanceClock adds d to the elapsed time and emits a PositionTick. It
// returns false once token is stale or the engine is no longer playing.
func (e *Engine) advanceClock(token uint64, d time.Duration) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if token != e.epoch || e.phase != PhasePlaying || e.track == nil {
		return false
	}
	e.elapsed += d
	tick := PositionTick{Frame: e.estimateLocked(), Elapsed: e.elapsed}
	for _, sub := range e.subs {
		sub.sendPosition(tick)
	}
	return true
}

// cancelLocked invalidates the current epoch and tears down the episode
// bound to it on behalf of op. It reports the frame the episode stopped at,
// if there was one.
func (e *Engine) cancelLocked(op errmsg.Op) (int, bool) {
	e.epoch++
	ep := e.ep
	if ep == nil {
		return 0, false
	}
	e.ep = nil
	return e.haltLocked(ep, op), true
}

// haltLocked runs the stop-and-report handshake: the ticker is cancelled,
// the stream is asked to stop, and the decode goroutine's report is awaited
// for at most the stop timeout. On timeout the frame from RequestStop is
// used, or the elapsed-time estimate when the stream could not tell.
func (e *Engine) haltLocked(ep *episode, op errmsg.Op) int {
	ep.cancel()
	reported := ep.stream.RequestStop()

	timer := time.NewTimer(e.stopTimeout)
	defer timer.Stop()

	select {
	case <-ep.done:
		if ep.frame >= 0 {
			return ep.frame
		}
		return e.estimateLocked()
	case <-timer.C:
		path := e.track.Path
		e.log.WithFields(logrus.Fields{
			"path":    path,
			"op":      op,
			"epoch":   ep.token,
			"timeout": e.stopTimeout,
		}).Warn("stream did not confirm stop")
		e.emitErrorLocked(op, path, ErrStopTimeout)
		if reported >= 0 {
			return reported
		}
		return e.estimateLocked()
	}
}
