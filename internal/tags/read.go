package tags

import (
	"os"

	"github.com/dhowden/tag"
	"go.senan.xyz/taglib"
)

// ReadTags reads title, artist and album from an MP3 file.
//
// dhowden/tag is tried first. It has issues with some UTF-16 encoded ID3
// tags, so bogem/id3v2 and then TagLib are used as fallbacks. A file with no
// readable tags still succeeds, with Unknown title and artist. Only an
// unopenable file is an error.
func ReadTags(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err == nil {
		return (&Tag{
			Path:   path,
			Title:  m.Title(),
			Artist: m.Artist(),
			Album:  m.Album(),
		}).withDefaults(), nil
	}

	if t, err := readMP3WithID3v2Fallback(path); err == nil {
		return t.withDefaults(), nil
	}
	if t, err := readWithTaglib(path); err == nil {
		return t.withDefaults(), nil
	}
	return (&Tag{Path: path}).withDefaults(), nil
}

// readWithTaglib reads tags through TagLib.
func readWithTaglib(path string) (*Tag, error) {
	rawTags, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	tags := taglibTags(rawTags)

	return &Tag{
		Path:   path,
		Title:  tags.get(taglib.Title),
		Artist: tags.get(taglib.Artist, taglib.AlbumArtist),
		Album:  tags.get(taglib.Album),
	}, nil
}
