package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/llehouerou/jamp/internal/app"
	"github.com/llehouerou/jamp/internal/config"
	"github.com/llehouerou/jamp/internal/errmsg"
	"github.com/llehouerou/jamp/internal/icons"
	"github.com/llehouerou/jamp/internal/logging"
	"github.com/llehouerou/jamp/internal/mpris"
	"github.com/llehouerou/jamp/internal/notify"
	"github.com/llehouerou/jamp/internal/playback"
	"github.com/llehouerou/jamp/internal/player"
	"github.com/llehouerou/jamp/internal/state"
	"github.com/llehouerou/jamp/internal/stderr"
	"github.com/llehouerou/jamp/internal/tags"
)

// loadConfig reads the config file named by opts, or the default locations.
func loadConfig(opts PlayerOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigFile != "" {
		cfg, err = config.LoadFile(opts.ConfigFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errmsg.OpConfigLoad, err)
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	return cfg, nil
}

// runPlayer sets up logging, audio output, the engine and the desktop
// integrations, then runs the TUI until the user quits.
func runPlayer(ctx context.Context, opts PlayerOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log, logFile, err := logging.Setup(afero.NewOsFs(), cfg.GetLogConfig())
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}
	defer logFile.Close()
	log.Info("starting")

	icons.Init(cfg.IconStyle())

	// Capture stderr before the speaker is initialized so ALSA/PulseAudio
	// chatter goes to the log instead of the TUI.
	capture, err := stderr.Start(log)
	if err != nil {
		log.WithError(err).Warn("stderr capture unavailable")
		capture = nil
	} else {
		defer capture.Stop()
	}

	history := openHistory(log)
	if history != nil {
		defer history.Close()
	}

	out := player.NewOutput()
	out.SetVolume(cfg.VolumeLevel())

	pb := cfg.GetPlaybackConfig()
	engine := playback.New(out,
		playback.WithTickInterval(pb.TickInterval),
		playback.WithStopTimeout(pb.StopTimeout),
		playback.WithLogger(logging.WithComponent(log, "playback")),
		playback.WithTrackReader(tags.NewReader()),
		playback.WithFs(afero.NewOsFs()),
	)
	defer engine.Close()

	if adapter, err := mpris.New(engine, out, logging.WithComponent(log, "mpris")); err != nil {
		log.WithError(err).Warn("mpris unavailable")
	} else {
		defer adapter.Close()
	}

	var announcer *notify.SongAnnouncer
	if cfg.NotificationsEnabled() {
		n, err := notify.New()
		if err != nil {
			log.WithError(err).Warn("notifications unavailable")
		} else {
			announcer = notify.NewSongAnnouncer(n)
			defer announcer.Dismiss()
		}
	}

	model := app.New(app.Deps{
		Service:   engine,
		Volume:    out,
		History:   history,
		Announcer: announcer,
		Stderr:    capture,
		Log:       log,
	}, app.Options{
		InitialPath:   opts.Path,
		DefaultFolder: cfg.DefaultFolder,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Info("exiting")
	return nil
}

// openHistory opens the recent-files database. The player runs without
// history when it cannot be opened.
func openHistory(log logrus.FieldLogger) state.Interface {
	mgr, err := state.Open()
	if err != nil {
		log.WithError(err).Warn(errmsg.Format(errmsg.OpHistoryLoad, err))
		return nil
	}
	return mgr
}
