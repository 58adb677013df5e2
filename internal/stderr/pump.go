package stderr

import (
	"bufio"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const bufferSize = 100

// pump logs every non-blank line from r and forwards it to out, dropping
// lines when out is full. It closes out when r is exhausted.
func pump(r io.Reader, log logrus.FieldLogger, out chan<- string) {
	defer close(out)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		log.Warn(line)
		select {
		case out <- line:
		default:
		}
	}
}
