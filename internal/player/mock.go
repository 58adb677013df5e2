// internal/player/mock.go
package player

import "sync"

// Mock is a test double for Decoder. Every Open returns a new MockStream
// whose PlayFrom blocks until the test finishes it or RequestStop is called.
type Mock struct {
	mu       sync.Mutex
	openErrs map[string]error
	opened   []string
	streams  []*MockStream
}

// NewMock creates a new mock decoder for testing.
func NewMock() *Mock {
	return &Mock{openErrs: make(map[string]error)}
}

func (m *Mock) Open(path string) (Stream, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.opened = append(m.opened, path)
	if err := m.openErrs[path]; err != nil {
		return nil, err
	}
	s := &MockStream{Path: path, end: make(chan mockResult, 1), stopFrame: -1}
	m.streams = append(m.streams, s)
	return s, nil
}

// Test helpers

// FailOpen makes Open fail for path.
func (m *Mock) FailOpen(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.openErrs[path] = err
}

// Opened returns the paths passed to Open, in order.
func (m *Mock) Opened() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.opened...)
}

// Streams returns every stream opened so far.
func (m *Mock) Streams() []*MockStream {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*MockStream(nil), m.streams...)
}

// Last returns the most recently opened stream, or nil.
func (m *Mock) Last() *MockStream {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.streams) == 0 {
		return nil
	}
	return m.streams[len(m.streams)-1]
}

type mockResult struct {
	frame int
	err   error
}

// MockStream is the Stream returned by Mock.
type MockStream struct {
	Path string

	mu         sync.Mutex
	starts     []int
	limits     []int
	stopFrame  int
	ignoreStop bool
	stops      int
	playing    bool
	stopped    bool
	finished   bool
	closed     bool
	end        chan mockResult
}

// PlayFrom blocks until Finish or RequestStop. After an earlier
// RequestStop it returns startFrame at once, as Output does.
func (s *MockStream) PlayFrom(startFrame, frameLimit int) (int, error) {
	s.mu.Lock()
	s.starts = append(s.starts, startFrame)
	s.limits = append(s.limits, frameLimit)
	if s.stopped && !s.finished {
		s.mu.Unlock()
		return startFrame, nil
	}
	s.playing = true
	s.mu.Unlock()

	r := <-s.end
	return r.frame, r.err
}

// RequestStop ends a running PlayFrom with the frame set by SetPosition,
// unless IgnoreStop was called. Before PlayFrom it only marks the stream
// stopped and reports -1.
func (s *MockStream) RequestStop() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stops++
	if s.ignoreStop {
		return s.stopFrame
	}
	s.stopped = true
	if !s.playing {
		return -1
	}
	s.finishLocked(s.stopFrame, nil)
	return s.stopFrame
}

func (s *MockStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Finish ends PlayFrom as if the stream ended at frame, or failed with err.
func (s *MockStream) Finish(frame int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finishLocked(frame, err)
}

func (s *MockStream) finishLocked(frame int, err error) {
	if s.finished {
		return
	}
	s.finished = true
	s.end <- mockResult{frame: frame, err: err}
}

// SetPosition sets the frame reported by RequestStop.
func (s *MockStream) SetPosition(frame int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopFrame = frame
}

// IgnoreStop makes RequestStop report its frame without ending PlayFrom.
func (s *MockStream) IgnoreStop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ignoreStop = true
}

// StartFrames returns the startFrame of every PlayFrom call.
func (s *MockStream) StartFrames() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.starts...)
}

// FrameLimits returns the frameLimit of every PlayFrom call.
func (s *MockStream) FrameLimits() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.limits...)
}

// StopRequests returns how many times RequestStop was called.
func (s *MockStream) StopRequests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stops
}

// Closed reports whether Close was called.
func (s *MockStream) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
