package playlist

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	failOn string
}

var errUnreadable = errors.New("unreadable")

func (r stubReader) ReadTrack(path string) (Track, error) {
	if path == r.failOn {
		return Track{}, errUnreadable
	}
	return Track{Path: path, Title: path, FrameRate: 0.038}, nil
}

func TestReadFile_SkipsBlankAndCommentLines(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "#EXTM3U\n/music/a.mp3\n\n   \n/music/b.mp3  \n"
	require.NoError(t, afero.WriteFile(fs, "/lists/mix.txt", []byte(content), 0o644))

	entries, err := ReadFile(fs, "/lists/mix.txt")

	require.NoError(t, err)
	assert.Equal(t, []string{"/music/a.mp3", "/music/b.mp3"}, entries)
}

func TestReadFile_NoTrailingNewline(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/mix.txt", []byte("/a.mp3\n/b.mp3"), 0o644))

	entries, err := ReadFile(fs, "/mix.txt")

	require.NoError(t, err)
	assert.Equal(t, []string{"/a.mp3", "/b.mp3"}, entries)
}

func TestReadFile_RelativePathsResolveAgainstPlaylistDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/lists/mix.txt", []byte("songs/a.mp3\n"), 0o644))

	entries, err := ReadFile(fs, "/lists/mix.txt")

	require.NoError(t, err)
	assert.Equal(t, []string{"/lists/songs/a.mp3"}, entries)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(afero.NewMemMapFs(), "/nope.txt")

	assert.Error(t, err)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	paths := []string{"/music/a.mp3", "/music/b.mp3"}

	require.NoError(t, WriteFile(fs, "/new/dir/list.txt", paths))

	data, err := afero.ReadFile(fs, "/new/dir/list.txt")
	require.NoError(t, err)
	assert.Equal(t, "/music/a.mp3\n/music/b.mp3\n", string(data))

	entries, err := ReadFile(fs, "/new/dir/list.txt")
	require.NoError(t, err)
	assert.Equal(t, paths, entries)
}

func TestLoad_BuildsPlaylist(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/mix.txt", []byte("/a.mp3\n/b.mp3\n"), 0o644))

	p, err := Load(fs, "/mix.txt", stubReader{})

	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "/a.mp3", p.Current().Path)
}

func TestLoad_EmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/empty.txt", []byte("\n\n"), 0o644))

	_, err := Load(fs, "/empty.txt", stubReader{})

	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoad_UnreadableEntry(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/mix.txt", []byte("/a.mp3\n/bad.mp3\n"), 0o644))

	_, err := Load(fs, "/mix.txt", stubReader{failOn: "/bad.mp3"})

	var entryErr *EntryError
	require.ErrorAs(t, err, &entryErr)
	assert.Equal(t, 2, entryErr.Entry)
	assert.Equal(t, "/bad.mp3", entryErr.Path)
	assert.ErrorIs(t, err, errUnreadable)
}
