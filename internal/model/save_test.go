package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareForSaveSynthesizesMaster(t *testing.T) {
	l := newLibraryWithTracks(2)
	var calls int
	freshID := func() uint64 {
		calls++
		return uint64(calls) * 1000
	}

	master := l.PrepareForSave(freshID)

	require.NotNil(t, master)
	assert.True(t, master.IsMaster)
	assert.Equal(t, []uint32{1, 2}, master.TrackIDs)
	assert.Equal(t, uint64(1000), l.DatabaseID)
	assert.Equal(t, uint64(2000), l.LibraryPersistentID)
}

func TestPrepareForSaveRefreshesExistingMaster(t *testing.T) {
	l := newLibraryWithTracks(3)
	master := l.EnsureMasterPlaylist()
	require.NoError(t, l.AddTrackToPlaylist(master.ID, 1, nil))

	l.AppendTrack(&Track{ID: 4})
	got := l.PrepareForSave(func() uint64 { return 7 })

	assert.Same(t, master, got)
	assert.Equal(t, []uint32{1, 2, 3, 4}, got.TrackIDs)
}

func TestPrepareForSaveKeepsNonzeroIDs(t *testing.T) {
	l := NewLibrary()
	l.DatabaseID = 42
	l.LibraryPersistentID = 43

	called := false
	l.PrepareForSave(func() uint64 {
		called = true
		return 999
	})

	assert.False(t, called)
	assert.Equal(t, uint64(42), l.DatabaseID)
	assert.Equal(t, uint64(43), l.LibraryPersistentID)
}
