package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/jamp/internal/playlist"
	"github.com/llehouerou/jamp/internal/state"
)

type mapReader map[string]playlist.Track

func (r mapReader) ReadTrack(path string) (playlist.Track, error) {
	if t, ok := r[path]; ok {
		return t, nil
	}
	return playlist.Track{}, errors.New("not an mp3")
}

func newTestEnv() (*Env, *state.Mock) {
	history := state.NewMock()
	return &Env{
		Fs: afero.NewMemMapFs(),
		Reader: mapReader{
			"/music/a.mp3": playlist.NewTrack("/music/a.mp3", "Song A", "Artist A", 3*time.Minute+5*time.Second, 7000),
			"/music/b.mp3": playlist.NewTrack("/music/b.mp3", "Song B", "Artist B", 2*time.Minute, 4600),
		},
		OpenHistory: func() (state.Interface, error) { return history, nil },
		RunPlayer:   func(context.Context, PlayerOptions) error { return nil },
	}, history
}

func execute(t *testing.T, env *Env, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(env)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(t.Context())
	return out.String(), errOut.String(), err
}

func TestRoot_PassesOptions(t *testing.T) {
	env, _ := newTestEnv()
	var got PlayerOptions
	env.RunPlayer = func(_ context.Context, opts PlayerOptions) error {
		got = opts
		return nil
	}

	_, _, err := execute(t, env, "--config", "/tmp/jamp.toml", "--log-level", "debug", "/music/road.txt")
	require.NoError(t, err)

	assert.Equal(t, PlayerOptions{ConfigFile: "/tmp/jamp.toml", LogLevel: "debug", Path: "/music/road.txt"}, got)
}

func TestRoot_NoArgs(t *testing.T) {
	env, _ := newTestEnv()
	called := false
	env.RunPlayer = func(_ context.Context, opts PlayerOptions) error {
		called = true
		assert.Empty(t, opts.Path)
		return nil
	}

	_, _, err := execute(t, env)
	require.NoError(t, err)
	assert.True(t, called)
}

func TestRoot_TooManyArgs(t *testing.T) {
	env, _ := newTestEnv()

	_, _, err := execute(t, env, "a.mp3", "b.mp3")
	assert.Error(t, err)
}

func TestPlaylistCreate(t *testing.T) {
	env, _ := newTestEnv()

	out, warn, err := execute(t, env, "playlist", "create", "/lists/road.txt", "/music/a.mp3", "/music/cover.jpg", "/music/b.mp3")
	require.NoError(t, err)

	assert.Equal(t, "Wrote 2 tracks to /lists/road.txt (5:05)\n", out)
	assert.Contains(t, warn, "skipping /music/cover.jpg")

	paths, err := playlist.ReadFile(env.Fs, "/lists/road.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"/music/a.mp3", "/music/b.mp3"}, paths)
}

func TestPlaylistCreate_NothingReadable(t *testing.T) {
	env, _ := newTestEnv()

	_, _, err := execute(t, env, "playlist", "create", "/lists/road.txt", "/music/x.mp3")
	require.ErrorIs(t, err, ErrNoTracks)

	exists, _ := afero.Exists(env.Fs, "/lists/road.txt")
	assert.False(t, exists, "no file should be written")
}

func TestPlaylistCreate_NeedsFiles(t *testing.T) {
	env, _ := newTestEnv()

	_, _, err := execute(t, env, "playlist", "create", "/lists/road.txt")
	assert.Error(t, err)
}

func TestPlaylistShow(t *testing.T) {
	env, _ := newTestEnv()
	require.NoError(t, playlist.WriteFile(env.Fs, "/music/road.txt", []string{"a.mp3", "gone.mp3", "/music/b.mp3"}))

	out, _, err := execute(t, env, "playlist", "show", "/music/road.txt")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "Length")
	assert.Contains(t, lines[1], "03:05")
	assert.Contains(t, lines[1], "Artist A")
	assert.Contains(t, lines[1], "Song A")
	assert.Contains(t, lines[2], "(unreadable)")
	assert.Contains(t, lines[2], "gone.mp3")
	assert.Contains(t, lines[3], "Song B")
	assert.Equal(t, "3 tracks, 5:05, 1 unreadable", lines[4])
}

func TestPlaylistShow_Empty(t *testing.T) {
	env, _ := newTestEnv()
	require.NoError(t, afero.WriteFile(env.Fs, "/music/empty.txt", []byte("# nothing\n\n"), 0o644))

	out, _, err := execute(t, env, "playlist", "show", "/music/empty.txt")
	require.NoError(t, err)
	assert.Equal(t, "Playlist is empty\n", out)
}

func TestPlaylistShow_Missing(t *testing.T) {
	env, _ := newTestEnv()

	_, _, err := execute(t, env, "playlist", "show", "/music/none.txt")
	assert.Error(t, err)
}

func TestRecent(t *testing.T) {
	env, history := newTestEnv()
	now := time.Now()
	require.NoError(t, history.AddRecent(t.Context(), state.RecentItem{
		Path: "/music/road.txt", Kind: state.KindPlaylist, TrackCount: 12, LoadedAt: now.Add(-3 * time.Hour),
	}))
	require.NoError(t, history.AddRecent(t.Context(), state.RecentItem{
		Path: "/music/a.mp3", Kind: state.KindTrack, Title: "Song A", Artist: "Artist A", LoadedAt: now.Add(-2 * time.Minute),
	}))

	out, _, err := execute(t, env, "recent")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "2 minutes ago")
	assert.Contains(t, lines[0], "Artist A - Song A")
	assert.Contains(t, lines[1], "3 hours ago")
	assert.Contains(t, lines[1], "road.txt (12 tracks)")
	assert.True(t, history.IsClosed())
}

func TestRecent_Limit(t *testing.T) {
	env, history := newTestEnv()
	for _, p := range []string{"/a.mp3", "/b.mp3", "/c.mp3"} {
		require.NoError(t, history.AddRecent(t.Context(), state.RecentItem{Path: p, Kind: state.KindTrack, LoadedAt: time.Now()}))
	}

	out, _, err := execute(t, env, "recent", "-n", "2")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
}

func TestRecent_Clear(t *testing.T) {
	env, history := newTestEnv()
	require.NoError(t, history.AddRecent(t.Context(), state.RecentItem{Path: "/a.mp3", Kind: state.KindTrack, LoadedAt: time.Now()}))

	out, _, err := execute(t, env, "recent", "--clear")
	require.NoError(t, err)
	assert.Equal(t, "History cleared\n", out)

	items, err := history.ListRecent(t.Context(), 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRecent_Empty(t *testing.T) {
	env, _ := newTestEnv()

	out, _, err := execute(t, env, "recent")
	require.NoError(t, err)
	assert.Equal(t, "Nothing played yet\n", out)
}

func TestRecent_OpenFailure(t *testing.T) {
	env, _ := newTestEnv()
	env.OpenHistory = func() (state.Interface, error) { return nil, errors.New("locked") }

	_, _, err := execute(t, env, "recent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load history")
}

func TestFormatLength(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{5*time.Minute + 5*time.Second, "5:05"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{1500 * time.Millisecond, "0:02"},
	}
	for _, tt := range tests {
		if got := formatLength(tt.d); got != tt.want {
			t.Errorf("formatLength(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestLoadConfig_LogLevelOverride(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig(PlayerOptions{LogLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.GetLogConfig().Level)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(PlayerOptions{ConfigFile: "/nonexistent/jamp.toml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load configuration")
}
