// Probe prints what the player sees in MP3 files: tags, stream properties
// and the frame count used for position addressing.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/llehouerou/jamp/internal/player"
	"github.com/llehouerou/jamp/internal/tags"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: probe <file.mp3 | dir>...")
		os.Exit(2)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	osFs := afero.NewOsFs()
	files, err := collect(osFs, os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("collect files")
	}
	log.Infof("Found %d MP3 files", len(files))

	failed := 0
	for _, path := range files {
		if err := probe(osFs, path); err != nil {
			log.WithError(err).WithField("path", path).Warn("probe failed")
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// collect expands directories into the MP3 files below them, sorted by path.
func collect(afs afero.Fs, args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := afs.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = afero.Walk(afs, arg, func(path string, fi fs.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.IsDir() && tags.IsMP3(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	slices.Sort(files)
	return files, nil
}

func probe(afs afero.Fs, path string) error {
	fi, err := afs.Stat(path)
	if err != nil {
		return err
	}
	info, err := tags.ReadAudioInfo(path)
	if err != nil {
		return err
	}
	t, err := tags.ReadTags(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", filepath.Base(path))
	fmt.Printf("  title:       %s\n", t.Title)
	fmt.Printf("  artist:      %s\n", t.Artist)
	if t.Album != "" {
		fmt.Printf("  album:       %s\n", t.Album)
	}
	fmt.Printf("  size:        %s\n", humanize.Bytes(uint64(fi.Size())))
	fmt.Printf("  duration:    %s\n", info.Duration.Round(time.Millisecond))
	fmt.Printf("  sample rate: %s Hz\n", humanize.Comma(int64(info.SampleRate)))
	fmt.Printf("  samples:     %s\n", humanize.Comma(info.TotalSamples))
	fmt.Printf("  frames:      %s (%d samples each)\n",
		humanize.Comma(int64(info.TotalFrames)), player.SamplesPerFrame(info.SampleRate))
	return nil
}
