package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/jamp/internal/errmsg"
	"github.com/llehouerou/jamp/internal/state"
	"github.com/llehouerou/jamp/internal/ui/render"
)

const (
	defaultRecentLimit = 20
	colWhen            = 16
	colKind            = 9
)

func newRecentCommand(env *Env) *cobra.Command {
	var (
		limit    int
		clearAll bool
	)

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently played files and playlists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			history, err := env.OpenHistory()
			if err != nil {
				return fmt.Errorf("%s: %w", errmsg.OpHistoryLoad, err)
			}
			defer history.Close()

			if clearAll {
				if err := history.ClearRecent(cmd.Context()); err != nil {
					return fmt.Errorf("%s: %w", errmsg.OpHistorySave, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
				return nil
			}

			items, err := history.ListRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("%s: %w", errmsg.OpHistoryLoad, err)
			}
			printRecent(cmd.OutOrStdout(), items, time.Now())
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultRecentLimit, "number of entries to show")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "forget all recent entries")
	return cmd
}

func printRecent(out io.Writer, items []state.RecentItem, now time.Time) {
	if len(items) == 0 {
		fmt.Fprintln(out, "Nothing played yet")
		return
	}
	for _, it := range items {
		when := humanize.RelTime(it.LoadedAt, now, "ago", "from now")
		fmt.Fprintln(out, render.Fit(when, colWhen)+" "+
			render.Fit(string(it.Kind), colKind)+" "+
			recentLabel(it))
	}
}

// recentLabel describes an entry: "Artist - Title" for tracks, the file
// name and size for playlists.
func recentLabel(it state.RecentItem) string {
	switch it.Kind {
	case state.KindPlaylist:
		return fmt.Sprintf("%s (%s)", filepath.Base(it.Path), pluralTracks(it.TrackCount))
	case state.KindTrack:
		if it.Title != "" {
			return render.Sanitize(it.Artist + " - " + it.Title)
		}
	}
	return filepath.Base(it.Path)
}
