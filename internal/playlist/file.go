package playlist

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// TrackReader builds a Track from a file path.
type TrackReader interface {
	ReadTrack(path string) (Track, error)
}

// EntryError reports the playlist entry that could not be read.
type EntryError struct {
	Entry int
	Path  string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d (%s): %v", e.Entry, e.Path, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// ReadFile reads a playlist file: one path per line, in playback order.
// Blank lines and lines starting with '#' are skipped. Relative paths are
// resolved against the playlist's directory.
func ReadFile(fs afero.Fs, path string) ([]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	entries := lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			return "", false
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(dir, line)
		}
		return line, true
	})
	return entries, nil
}

// WriteFile writes paths as a playlist file, creating parent directories.
func WriteFile(fs afero.Fs, path string, paths []string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var b strings.Builder
	for _, p := range paths {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	return afero.WriteFile(fs, path, []byte(b.String()), 0o644)
}

// Load reads a playlist file and builds its tracks with r.
// The first unreadable entry fails the whole load.
func Load(fs afero.Fs, path string, r TrackReader) (*Playlist, error) {
	entries, err := ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	tracks := make([]Track, 0, len(entries))
	for i, entry := range entries {
		t, err := r.ReadTrack(entry)
		if err != nil {
			return nil, &EntryError{Entry: i + 1, Path: entry, Err: err}
		}
		tracks = append(tracks, t)
	}
	return New(tracks)
}
