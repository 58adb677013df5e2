// Package cli wires the jamp command line: the player itself plus the
// playlist and history subcommands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/llehouerou/jamp/internal/playlist"
	"github.com/llehouerou/jamp/internal/state"
	"github.com/llehouerou/jamp/internal/tags"
)

// Env holds what the commands touch outside the process. Tests swap in
// in-memory versions.
type Env struct {
	Fs          afero.Fs
	Reader      playlist.TrackReader
	OpenHistory func() (state.Interface, error)
	// RunPlayer starts the TUI. Defaults to runPlayer.
	RunPlayer func(ctx context.Context, opts PlayerOptions) error
}

// DefaultEnv uses the real filesystem, tag reader and history database.
func DefaultEnv() *Env {
	return &Env{
		Fs:     afero.NewOsFs(),
		Reader: tags.NewReader(),
		OpenHistory: func() (state.Interface, error) {
			return state.Open()
		},
		RunPlayer: runPlayer,
	}
}

// PlayerOptions are the root command's flags and argument.
type PlayerOptions struct {
	ConfigFile string
	LogLevel   string
	Path       string
}

// NewRootCommand builds the command tree.
func NewRootCommand(env *Env) *cobra.Command {
	var opts PlayerOptions

	root := &cobra.Command{
		Use:   "jamp [file.mp3 | playlist.txt]",
		Short: "A terminal MP3 player",
		Long: `JAmp plays MP3 files and playlists in the terminal.

A playlist is a text file with one MP3 path per line. Relative paths are
resolved against the playlist's directory; blank lines and lines starting
with # are ignored.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Path = args[0]
			}
			return env.RunPlayer(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default is ~/.config/jamp/config.toml)")
	root.Flags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newPlaylistCommand(env))
	root.AddCommand(newRecentCommand(env))

	return root
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	root := NewRootCommand(DefaultEnv())
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
