//go:build windows

package stderr

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Capture is a no-op on Windows, whose audio backend does not write to fd 2.
type Capture struct {
	lines chan string
}

// Start is a no-op on Windows.
func Start(_ logrus.FieldLogger) (*Capture, error) {
	return &Capture{lines: make(chan string)}, nil
}

// Lines never receives on Windows.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// WriteOriginal writes to stderr.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop closes Lines.
func (c *Capture) Stop() {
	close(c.lines)
}
