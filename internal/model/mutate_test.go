package model

import (
	"testing"

	"github.com/arung-agamani/itunesdb/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLibraryWithTracks(n int) *Library {
	l := NewLibrary()
	for i := 1; i <= n; i++ {
		l.AppendTrack(&Track{ID: uint32(i)})
	}
	return l
}

func TestCreatePlaylistDuplicateName(t *testing.T) {
	l := NewLibrary()
	_, err := l.CreatePlaylist("Rock", SortOrderManual)
	require.NoError(t, err)

	_, err = l.CreatePlaylist("Rock", SortOrderManual)
	var dup *errs.DuplicateError
	assert.ErrorAs(t, err, &dup)
}

func TestDeletePlaylistProtectsMaster(t *testing.T) {
	l := NewLibrary()
	master := l.EnsureMasterPlaylist()

	err := l.DeletePlaylist(master.ID)
	var protected *errs.MasterProtectedError
	assert.ErrorAs(t, err, &protected)
}

func TestDeletePlaylistNotFound(t *testing.T) {
	l := NewLibrary()
	err := l.DeletePlaylist(999)
	var notFound *errs.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestAddTrackToPlaylistAtPosition(t *testing.T) {
	l := newLibraryWithTracks(3)
	p, err := l.CreatePlaylist("Mix", SortOrderManual)
	require.NoError(t, err)

	require.NoError(t, l.AddTrackToPlaylist(p.ID, 1, nil))
	require.NoError(t, l.AddTrackToPlaylist(p.ID, 2, nil))
	zero := 0
	require.NoError(t, l.AddTrackToPlaylist(p.ID, 3, &zero))

	assert.Equal(t, []uint32{3, 1, 2}, l.PlaylistByID(p.ID).TrackIDs)
}

func TestAddTrackToPlaylistAlreadyPresent(t *testing.T) {
	l := newLibraryWithTracks(1)
	p, err := l.CreatePlaylist("Mix", SortOrderManual)
	require.NoError(t, err)
	require.NoError(t, l.AddTrackToPlaylist(p.ID, 1, nil))

	err = l.AddTrackToPlaylist(p.ID, 1, nil)
	var already *errs.AlreadyPresentError
	assert.ErrorAs(t, err, &already)
}

func TestAddTrackToPlaylistUnknownTrack(t *testing.T) {
	l := NewLibrary()
	p, err := l.CreatePlaylist("Mix", SortOrderManual)
	require.NoError(t, err)

	err = l.AddTrackToPlaylist(p.ID, 7, nil)
	var trackNotFound *errs.TrackNotFoundError
	assert.ErrorAs(t, err, &trackNotFound)
}

func TestRemoveTrackFromPlaylistNotPresent(t *testing.T) {
	l := newLibraryWithTracks(1)
	p, err := l.CreatePlaylist("Mix", SortOrderManual)
	require.NoError(t, err)

	err = l.RemoveTrackFromPlaylist(p.ID, 1)
	var notPresent *errs.NotPresentError
	assert.ErrorAs(t, err, &notPresent)
}

func TestReorderPlaylistRejectsNonPermutation(t *testing.T) {
	l := newLibraryWithTracks(3)
	p, err := l.CreatePlaylist("Mix", SortOrderManual)
	require.NoError(t, err)
	require.NoError(t, l.AddTrackToPlaylist(p.ID, 1, nil))
	require.NoError(t, l.AddTrackToPlaylist(p.ID, 2, nil))
	require.NoError(t, l.AddTrackToPlaylist(p.ID, 3, nil))

	err = l.ReorderPlaylist(p.ID, []uint32{1, 2})
	var mismatch *errs.OrderMismatchError
	assert.ErrorAs(t, err, &mismatch)

	require.NoError(t, l.ReorderPlaylist(p.ID, []uint32{3, 1, 2}))
	assert.Equal(t, []uint32{3, 1, 2}, l.PlaylistByID(p.ID).TrackIDs)
}

func TestDuplicatePlaylist(t *testing.T) {
	l := newLibraryWithTracks(2)
	p, err := l.CreatePlaylist("Mix", SortOrderManual)
	require.NoError(t, err)
	require.NoError(t, l.AddTrackToPlaylist(p.ID, 1, nil))
	require.NoError(t, l.AddTrackToPlaylist(p.ID, 2, nil))

	cp, err := l.DuplicatePlaylist(p.ID, "Mix Copy")
	require.NoError(t, err)
	assert.Equal(t, p.TrackIDs, cp.TrackIDs)
	assert.NotSame(t, p, cp)

	// Mutating the copy must not affect the original.
	require.NoError(t, l.RemoveTrackFromPlaylist(cp.ID, 1))
	assert.Equal(t, []uint32{1, 2}, l.PlaylistByID(p.ID).TrackIDs)
}

func TestClearPlaylistProtectsMaster(t *testing.T) {
	l := NewLibrary()
	master := l.EnsureMasterPlaylist()

	err := l.ClearPlaylist(master.ID)
	var protected *errs.MasterProtectedError
	assert.ErrorAs(t, err, &protected)
}

func TestMoveTrackInPlaylist(t *testing.T) {
	l := newLibraryWithTracks(3)
	p, err := l.CreatePlaylist("Mix", SortOrderManual)
	require.NoError(t, err)
	require.NoError(t, l.AddTrackToPlaylist(p.ID, 1, nil))
	require.NoError(t, l.AddTrackToPlaylist(p.ID, 2, nil))
	require.NoError(t, l.AddTrackToPlaylist(p.ID, 3, nil))

	require.NoError(t, l.MoveTrackInPlaylist(p.ID, 1, 2))
	assert.Equal(t, []uint32{2, 3, 1}, l.PlaylistByID(p.ID).TrackIDs)
}
