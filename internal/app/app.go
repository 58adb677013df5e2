// Package app is the terminal front end: a bubbletea model driving the
// playback engine and rendering its events.
package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/jamp/internal/keymap"
	"github.com/llehouerou/jamp/internal/logging"
	"github.com/llehouerou/jamp/internal/notify"
	"github.com/llehouerou/jamp/internal/playback"
	"github.com/llehouerou/jamp/internal/state"
	"github.com/llehouerou/jamp/internal/stderr"
	"github.com/llehouerou/jamp/internal/ui/helpbindings"
)

// Volume is the output gain the model adjusts. *player.Output satisfies it.
type Volume interface {
	Volume() float64
	SetVolume(level float64)
	Muted() bool
	SetMuted(muted bool)
}

// Deps holds the collaborators the model drives. Only Service is required.
type Deps struct {
	Service   playback.Service
	Volume    Volume
	History   state.Interface
	Announcer *notify.SongAnnouncer
	Stderr    *stderr.Capture
	Log       logrus.FieldLogger
}

// Options holds startup settings.
type Options struct {
	// InitialPath is loaded on startup when set.
	InitialPath string
	// DefaultFolder prefills the open prompt.
	DefaultFolder string
}

// Model is the root application model.
type Model struct {
	Service   playback.Service
	Volume    Volume
	History   state.Interface
	Announcer *notify.SongAnnouncer
	Stderr    *stderr.Capture
	Keys      *keymap.Resolver

	sub      *playback.Subscription
	snapshot playback.Snapshot
	log      logrus.FieldLogger

	Prompt        textinput.Model
	Prompting     bool
	ShowHelp      bool
	Help          helpbindings.Model
	DefaultFolder string
	InitialPath   string

	// Source names the loaded file or playlist in the header.
	Source    string
	StatusMsg string
	ErrorMsg  string

	Width  int
	Height int
}

// New creates the model and subscribes it to the engine.
func New(deps Deps, opts Options) Model {
	log := deps.Log
	if log == nil {
		log = logging.Discard()
	}

	ti := textinput.New()
	ti.Prompt = "Open: "
	ti.Placeholder = "path to an .mp3 or a playlist .txt"
	ti.CharLimit = 1024
	ti.Width = 60

	return Model{
		Service:       deps.Service,
		Volume:        deps.Volume,
		History:       deps.History,
		Announcer:     deps.Announcer,
		Stderr:        deps.Stderr,
		Keys:          keymap.NewResolver(keymap.Bindings),
		sub:           deps.Service.Subscribe(),
		snapshot:      deps.Service.Snapshot(),
		log:           logging.WithComponent(log, "app"),
		Prompt:        ti,
		Help:          helpbindings.New(),
		DefaultFolder: opts.DefaultFolder,
		InitialPath:   opts.InitialPath,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.WatchServiceEvents(), m.WatchStderr()}
	if m.InitialPath != "" {
		cmds = append(cmds, m.LoadPathCmd(m.InitialPath))
	}
	return tea.Batch(cmds...)
}

// Snapshot returns the engine state as of the last handled event.
func (m Model) Snapshot() playback.Snapshot {
	return m.snapshot
}
