package device

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arung-agamani/itunesdb/internal/errs"
	"github.com/arung-agamani/itunesdb/internal/metadata"
	"github.com/arung-agamani/itunesdb/internal/model"
	"github.com/arung-agamani/itunesdb/internal/rng"
)

// ProgressFunc reports sync progress after each file: current is
// 1-indexed, total is the batch size, filename is the source path just
// processed (successfully or not).
type ProgressFunc func(current, total int, filename string)

// fileTypeFor maps a supported extension to the device's on-disk file
// type tag. The caller must already have confirmed the extension is
// supported.
func fileTypeFor(ext string) model.FileType {
	switch strings.ToLower(ext) {
	case ".mp3":
		return model.FileTypeMP3
	case ".m4a", ".mp4":
		return model.FileTypeM4A
	case ".m4p":
		return model.FileTypeM4P
	case ".aac":
		return model.FileTypeAAC
	default:
		return 0
	}
}

// SyncFile copies one file onto the device, registers it as a new track
// in lib, and appends it to the master playlist. checkDuplicate, when
// true, rejects a file whose title/artist/album triple already exists in
// the library.
func SyncFile(lib *model.Library, mountRoot, srcPath string, provider metadata.Provider, src rng.Source, checkDuplicate bool) (*model.Track, error) {
	ext := filepath.Ext(srcPath)
	if !IsSupportedExtension(ext) {
		return nil, &errs.UnsupportedFormatError{Extension: ext}
	}

	rec := provider.Read(srcPath)

	if checkDuplicate {
		for _, t := range lib.AllTracks() {
			if t.Title == rec.Title && t.Artist == rec.Artist && t.Album == rec.Album {
				return nil, &errs.AlreadyExistsError{Title: rec.Title, Artist: rec.Artist, Album: rec.Album}
			}
		}
	}

	_, folderName, err := SelectFolder(mountRoot)
	if err != nil {
		return nil, &errs.IOFailedError{Op: "select folder", Path: mountRoot, Err: err}
	}
	folderDir := filepath.Join(mountRoot, "iPod_Control", "Music", folderName)

	filename, err := AllocateFilename(src, folderDir, ext)
	if err != nil {
		return nil, &errs.IOFailedError{Op: "allocate filename", Path: folderDir, Err: err}
	}
	destPath := filepath.Join(folderDir, filename)

	info, err := copyFilePreservingModTime(srcPath, destPath)
	if err != nil {
		return nil, &errs.IOFailedError{Op: "copy", Path: srcPath, Err: err}
	}

	track := &model.Track{
		ID:           lib.NextTrackID(),
		DBID:         rng.Nonzero63(src),
		Path:         DevicePath(folderName, filename),
		FileType:     fileTypeFor(ext),
		MediaType:    model.MediaTypeAudio,
		SizeBytes:    uint32(info.Size()),
		DateAdded:    time.Now(),
		LastModified: info.ModTime(),
		Title:        rec.Title,
		Artist:       rec.Artist,
		Album:        rec.Album,
		AlbumArtist:  rec.AlbumArtist,
		Genre:        rec.Genre,
		Composer:     rec.Composer,
		Comment:      rec.Comment,
		Year:         rec.Year,
		TrackNumber:  rec.TrackNumber,
		TotalTracks:  rec.TotalTracks,
		DiscNumber:   rec.DiscNumber,
		TotalDiscs:   rec.TotalDiscs,
		DurationMS:   rec.DurationMS,
		Bitrate:      rec.Bitrate,
		SampleRate:   rec.SampleRate,
	}

	lib.AppendTrack(track)
	master := lib.EnsureMasterPlaylist()
	_ = lib.AddTrackToPlaylist(master.ID, track.ID, nil)

	return track, nil
}

// copyFilePreservingModTime copies src to dst and sets dst's modification
// time to match src's, returning dst's resulting file info.
func copyFilePreservingModTime(src, dst string) (os.FileInfo, error) {
	in, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	srcInfo, err := in.Stat()
	if err != nil {
		return nil, err
	}

	out, err := os.Create(dst)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, err
	}
	if err := os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		return nil, err
	}
	return os.Stat(dst)
}

// SyncResult records the outcome of syncing one file within a batch.
type SyncResult struct {
	Path  string
	Track *model.Track
	Err   error
}

// SyncFolder syncs every supported file directly under dir (or, when
// recursive is true, under its full tree) into lib, in sorted path
// order. It reports progress via onProgress after each file and checks
// ctx for cancellation between files; a cancellation stops cleanly, and
// files already synced remain in the library. A failure syncing one file
// does not abort the batch — it is recorded in the returned slice and the
// batch continues.
func SyncFolder(ctx context.Context, lib *model.Library, mountRoot, dir string, recursive bool, provider metadata.Provider, src rng.Source, checkDuplicate bool, onProgress ProgressFunc) ([]SyncResult, error) {
	paths, err := collectFiles(dir, recursive)
	if err != nil {
		return nil, &errs.IOFailedError{Op: "list", Path: dir, Err: err}
	}
	sort.Strings(paths)

	results := make([]SyncResult, 0, len(paths))
	for i, p := range paths {
		select {
		case <-ctx.Done():
			return results, nil
		default:
		}

		track, syncErr := SyncFile(lib, mountRoot, p, provider, src, checkDuplicate)
		results = append(results, SyncResult{Path: p, Track: track, Err: syncErr})
		if onProgress != nil {
			onProgress(i+1, len(paths), p)
		}
	}
	return results, nil
}

func collectFiles(dir string, recursive bool) ([]string, error) {
	var out []string
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			out = append(out, filepath.Join(dir, e.Name()))
		}
		return out, nil
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		out = append(out, path)
		return nil
	})
	return out, err
}

// RemoveTrack deletes the track with the given ID from lib and, if its
// on-device file is present, unlinks it from the filesystem. A missing
// file is not an error.
func RemoveTrack(lib *model.Library, mountRoot string, id uint32) error {
	t := lib.TrackByID(id)
	if t == nil {
		return &errs.TrackNotFoundError{TrackID: id}
	}
	fsPath := ResolvePath(mountRoot, t.Path)
	if err := os.Remove(fsPath); err != nil && !os.IsNotExist(err) {
		return &errs.IOFailedError{Op: "remove", Path: fsPath, Err: err}
	}
	lib.RemoveTrack(id)
	return nil
}

// GetTrackFilePath resolves a track's on-device path to an absolute
// filesystem path under mountRoot.
func GetTrackFilePath(mountRoot string, t *model.Track) string {
	return ResolvePath(mountRoot, t.Path)
}
