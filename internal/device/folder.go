// Package device implements the filesystem-pairing layer: load-balanced
// placement of audio files into the device's F00-F49 folders, on-device
// path encoding, and atomic database persistence (spec.md section 4.6).
package device

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arung-agamani/itunesdb/internal/rng"
)

// NumMusicFolders is the number of load-balancing buckets the device's
// Music directory is divided into (F00 through F49).
const NumMusicFolders = 50

// musicFolderName returns the canonical "F00".."F49" folder name.
func musicFolderName(index int) string {
	return fmt.Sprintf("F%02d", index)
}

// EnsureMusicFolders creates iPod_Control/Music/F00..F49 under mountRoot
// if they don't already exist.
func EnsureMusicFolders(mountRoot string) error {
	for i := 0; i < NumMusicFolders; i++ {
		dir := filepath.Join(mountRoot, "iPod_Control", "Music", musicFolderName(i))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// SelectFolder picks the Fnn folder with the fewest entries at selection
// time, breaking ties by lowest index — matching the original sync
// engine's behavior of scanning folders in order and keeping the first
// strict minimum found.
func SelectFolder(mountRoot string) (index int, name string, err error) {
	best := -1
	bestCount := -1
	for i := 0; i < NumMusicFolders; i++ {
		dir := filepath.Join(mountRoot, "iPod_Control", "Music", musicFolderName(i))
		entries, readErr := os.ReadDir(dir)
		count := 0
		if readErr == nil {
			count = len(entries)
		}
		if bestCount < 0 || count < bestCount {
			best = i
			bestCount = count
		}
	}
	if best < 0 {
		return 0, "", fmt.Errorf("no music folders found under %s", mountRoot)
	}
	return best, musicFolderName(best), nil
}

// AllocateFilename picks a random 4-character uppercase-alphanumeric
// filename stem for folderDir, resampling on collision with an existing
// file of the same extension.
func AllocateFilename(src rng.Source, folderDir, ext string) (string, error) {
	for attempt := 0; attempt < 1000; attempt++ {
		stem := rng.Filename4(src)
		candidate := stem + ext
		path := filepath.Join(folderDir, candidate)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not allocate a free filename in %s after 1000 attempts", folderDir)
}
