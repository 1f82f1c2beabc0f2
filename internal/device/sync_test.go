package device

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arung-agamani/itunesdb/internal/errs"
	"github.com/arung-agamani/itunesdb/internal/metadata"
	"github.com/arung-agamani/itunesdb/internal/model"
	"github.com/arung-agamani/itunesdb/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	rec metadata.Record
}

func (s stubProvider) Read(path string) metadata.Record {
	return s.rec
}

func writeTempFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("fake audio bytes"), 0o644))
	return path
}

func TestSyncFileRegistersTrackAndPlaylist(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, EnsureMusicFolders(root))
	srcDir := t.TempDir()
	srcPath := writeTempFile(t, srcDir, "song.mp3")

	lib := model.NewLibrary()
	provider := stubProvider{rec: metadata.Record{Title: "Song", Artist: "Artist", Album: "Album"}}
	src := rng.Fixed(1)

	track, err := SyncFile(lib, root, srcPath, provider, src, false)
	require.NoError(t, err)
	require.NotNil(t, track)

	assert.Equal(t, uint32(1), track.ID)
	assert.Equal(t, "Song", track.Title)
	assert.Equal(t, model.FileTypeMP3, track.FileType)
	assert.FileExists(t, GetTrackFilePath(root, track))

	master := lib.MasterPlaylist()
	require.NotNil(t, master)
	assert.Equal(t, []uint32{track.ID}, master.TrackIDs)
}

func TestSyncFileRejectsUnsupportedExtension(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, EnsureMusicFolders(root))
	srcDir := t.TempDir()
	srcPath := writeTempFile(t, srcDir, "song.flac")

	lib := model.NewLibrary()
	_, err := SyncFile(lib, root, srcPath, stubProvider{}, rng.Fixed(1), false)

	var unsupported *errs.UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)
}

func TestSyncFileDuplicateDetection(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, EnsureMusicFolders(root))
	srcDir := t.TempDir()

	lib := model.NewLibrary()
	provider := stubProvider{rec: metadata.Record{Title: "Song", Artist: "Artist", Album: "Album"}}
	src := rng.Fixed(1)

	first := writeTempFile(t, srcDir, "one.mp3")
	_, err := SyncFile(lib, root, first, provider, src, true)
	require.NoError(t, err)

	second := writeTempFile(t, srcDir, "two.mp3")
	_, err = SyncFile(lib, root, second, provider, src, true)
	var already *errs.AlreadyExistsError
	assert.ErrorAs(t, err, &already)
}

func TestSyncFolderCollectsPerFileErrorsWithoutAborting(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, EnsureMusicFolders(root))
	srcDir := t.TempDir()
	writeTempFile(t, srcDir, "good.mp3")
	writeTempFile(t, srcDir, "bad.flac")

	lib := model.NewLibrary()
	provider := stubProvider{rec: metadata.Record{Title: "Song"}}

	results, err := SyncFolder(context.Background(), lib, root, srcDir, false, provider, rng.Fixed(1), false, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)

	var errCount, okCount int
	for _, r := range results {
		if r.Err != nil {
			errCount++
		} else {
			okCount++
		}
	}
	assert.Equal(t, 1, errCount)
	assert.Equal(t, 1, okCount)
	assert.Equal(t, 1, lib.TrackCount())
}

func TestRemoveTrackDeletesFileAndEntry(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, EnsureMusicFolders(root))
	srcDir := t.TempDir()
	srcPath := writeTempFile(t, srcDir, "song.mp3")

	lib := model.NewLibrary()
	provider := stubProvider{rec: metadata.Record{Title: "Song"}}
	track, err := SyncFile(lib, root, srcPath, provider, rng.Fixed(1), false)
	require.NoError(t, err)

	fsPath := GetTrackFilePath(root, track)
	require.NoError(t, RemoveTrack(lib, root, track.ID))

	assert.Nil(t, lib.TrackByID(track.ID))
	_, statErr := os.Stat(fsPath)
	assert.True(t, os.IsNotExist(statErr))
}
