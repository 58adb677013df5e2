package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/llehouerou/jamp/internal/errmsg"
	"github.com/llehouerou/jamp/internal/playlist"
	"github.com/llehouerou/jamp/internal/ui/render"
)

// ErrNoTracks is returned by playlist create when no input file is playable.
var ErrNoTracks = errors.New("no readable tracks")

const (
	colIndex  = 4
	colLength = 6
	colArtist = 24
	colTitle  = 40
)

func newPlaylistCommand(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playlist",
		Short: "Create and inspect playlist files",
	}
	cmd.AddCommand(newPlaylistCreateCommand(env))
	cmd.AddCommand(newPlaylistShowCommand(env))
	return cmd
}

func newPlaylistCreateCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "create <playlist.txt> <file.mp3>...",
		Short: "Write a playlist file from MP3 files",
		Long: `Write a playlist file listing the given MP3 files in order.
Files whose tags or stream cannot be read are skipped with a warning.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return createPlaylist(env, cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], args[1:])
		},
	}
}

func createPlaylist(env *Env, out, warn io.Writer, dest string, files []string) error {
	var (
		paths []string
		total time.Duration
	)
	for _, f := range files {
		if abs, err := filepath.Abs(f); err == nil {
			f = abs
		}
		track, err := env.Reader.ReadTrack(f)
		if err != nil {
			fmt.Fprintf(warn, "warning: skipping %s: %v\n", f, err)
			continue
		}
		paths = append(paths, f)
		total += track.Duration
	}
	if len(paths) == 0 {
		return fmt.Errorf("%s: %w", errmsg.OpPlaylistCreate, ErrNoTracks)
	}

	if err := playlist.WriteFile(env.Fs, dest, paths); err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpPlaylistCreate, err)
	}
	fmt.Fprintf(out, "Wrote %s to %s (%s)\n",
		pluralTracks(len(paths)), dest, formatLength(total))
	return nil
}

func newPlaylistShowCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <playlist.txt>",
		Short: "List the tracks of a playlist file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showPlaylist(env, cmd.OutOrStdout(), args[0])
		},
	}
}

// showRow is one line of playlist show output.
type showRow struct {
	track playlist.Track
	err   error
}

func showPlaylist(env *Env, out io.Writer, path string) error {
	entries, err := playlist.ReadFile(env.Fs, path)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpPlaylistShow, err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "Playlist is empty")
		return nil
	}

	rows := lo.Map(entries, func(entry string, _ int) showRow {
		t, err := env.Reader.ReadTrack(entry)
		if err != nil {
			t = playlist.Track{Path: entry, Title: filepath.Base(entry)}
		}
		return showRow{track: t, err: err}
	})

	fmt.Fprintln(out, render.Fit("#", colIndex)+" "+
		render.Fit("Length", colLength)+" "+
		render.Fit("Artist", colArtist)+" "+
		"Title")
	for i, r := range rows {
		length, artist := r.track.Length(), r.track.Artist
		if r.err != nil {
			length, artist = "--:--", "(unreadable)"
		}
		fmt.Fprintln(out, render.Fit(fmt.Sprintf("%d", i+1), colIndex)+" "+
			render.Fit(length, colLength)+" "+
			render.Fit(artist, colArtist)+" "+
			render.Truncate(render.Sanitize(r.track.Title), colTitle))
	}

	readable := lo.Filter(rows, func(r showRow, _ int) bool { return r.err == nil })
	total := lo.SumBy(readable, func(r showRow) time.Duration { return r.track.Duration })
	summary := fmt.Sprintf("%s, %s", pluralTracks(len(rows)), formatLength(total))
	if bad := len(rows) - len(readable); bad > 0 {
		summary += fmt.Sprintf(", %d unreadable", bad)
	}
	fmt.Fprintln(out, summary)
	return nil
}

func pluralTracks(n int) string {
	return fmt.Sprintf("%s %s", humanize.Comma(int64(n)), lo.Ternary(n == 1, "track", "tracks"))
}

// formatLength renders a total playing time as h:mm:ss or m:ss.
func formatLength(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	h, m, s := secs/3600, secs/60%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
