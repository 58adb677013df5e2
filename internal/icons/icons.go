// Package icons provides the glyphs for playback phases and loaded items in
// the configured style.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Playing  string
	Paused   string
	Stopped  string
	Finished string
	Track    string
	Playlist string
	Muted    string
}

var (
	nerdIcons = Icons{
		Playing:  "\uf04b",      // nf-fa-play
		Paused:   "\uf04c",      // nf-fa-pause
		Stopped:  "\uf04d",      // nf-fa-stop
		Finished: "\uf00c",      // nf-fa-check
		Track:    "\uf001 ",     // nf-fa-music
		Playlist: "\U000f0cb8 ", // nf-md-playlist_music
		Muted:    "\uf6a9",      // nf-fa-volume_mute
	}

	unicodeIcons = Icons{
		Playing:  "▶",
		Paused:   "⏸",
		Stopped:  "■",
		Finished: "✓",
		Track:    "♪ ",
		Playlist: "≡ ",
		Muted:    "🔇",
	}

	noneIcons = Icons{
		Playing:  ">",
		Paused:   "||",
		Stopped:  "[]",
		Finished: "ok",
		Track:    "",
		Playlist: "",
		Muted:    "x",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value. An empty or unknown
// style selects unicode.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = unicodeIcons
	}
}

// Playing returns the playing indicator.
func Playing() string {
	return current.Playing
}

// Paused returns the paused indicator.
func Paused() string {
	return current.Paused
}

// Stopped returns the stopped indicator.
func Stopped() string {
	return current.Stopped
}

// Finished returns the indicator for a track that played to the end.
func Finished() string {
	return current.Finished
}

// Muted returns the muted-output indicator.
func Muted() string {
	return current.Muted
}

// FormatTrack formats a track name with the appropriate icon.
func FormatTrack(name string) string {
	return current.Track + name
}

// FormatPlaylist formats a playlist name with the appropriate icon.
func FormatPlaylist(name string) string {
	return current.Playlist + name
}
