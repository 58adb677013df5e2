package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	SongChanged    <-chan SongChange
	StateChanged   <-chan StateChange
	PositionTicked <-chan PositionTick
	Error          <-chan ErrorEvent
	Done           <-chan struct{}

	// Internal write channels
	songCh     chan SongChange
	stateCh    chan StateChange
	positionCh chan PositionTick
	errorCh    chan ErrorEvent
	doneCh     chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		songCh:     make(chan SongChange, eventBufferSize),
		stateCh:    make(chan StateChange, eventBufferSize),
		positionCh: make(chan PositionTick, eventBufferSize),
		errorCh:    make(chan ErrorEvent, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.SongChanged = s.songCh
	s.StateChanged = s.stateCh
	s.PositionTicked = s.positionCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendSong sends a song change event (non-blocking).
func (s *Subscription) sendSong(e SongChange) {
	select {
	case s.songCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendState sends a state change event (non-blocking).
func (s *Subscription) sendState(e StateChange) {
	select {
	case s.stateCh <- e:
	default:
	}
}

// sendPosition sends a position tick (non-blocking).
func (s *Subscription) sendPosition(e PositionTick) {
	select {
	case s.positionCh <- e:
	default:
	}
}

// sendError sends an error event (non-blocking).
func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
