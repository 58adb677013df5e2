//go:build !windows

// Package stderr captures output that the audio backend's C code writes
// straight to file descriptor 2, bypassing os.Stderr. Captured lines go to
// the log instead of corrupting the TUI.
package stderr

import (
	"os"
	"syscall"

	"github.com/sirupsen/logrus"
)

// Capture redirects fd 2 into a pipe until Stop is called.
type Capture struct {
	lines      chan string
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	done       chan struct{}
}

// Start begins capturing stderr output. Call it early in main, before the
// speaker is initialized. The program can continue without capture if it
// fails; output then goes to the original stderr.
func Start(log logrus.FieldLogger) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	origStderr, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{
		lines:      make(chan string, bufferSize),
		origStderr: origStderr,
		pipeRead:   r,
		pipeWrite:  w,
		done:       make(chan struct{}),
	}
	go func() {
		defer close(c.done)
		pump(r, log.WithField("component", "stderr"), c.lines)
	}()
	return c, nil
}

// Lines receives captured lines for display. It is closed by Stop.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = syscall.Write(c.origStderr, []byte(msg))
}

// Stop restores the original stderr and waits for pending lines to be logged.
func (c *Capture) Stop() {
	_ = syscall.Dup2(c.origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(c.origStderr)

	c.pipeWrite.Close()
	<-c.done
	c.pipeRead.Close()
}
