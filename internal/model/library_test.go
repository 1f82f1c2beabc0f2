package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLibrary(t *testing.T) {
	l := NewLibrary()
	assert.Equal(t, uint16(0x15), l.Version)
	assert.Equal(t, "en", l.Language)
	assert.Equal(t, 0, l.TrackCount())
	assert.Equal(t, 0, l.PlaylistCount())
}

func TestNextTrackID(t *testing.T) {
	l := NewLibrary()
	assert.Equal(t, uint32(1), l.NextTrackID())

	l.AppendTrack(&Track{ID: 1})
	l.AppendTrack(&Track{ID: 5})
	assert.Equal(t, uint32(6), l.NextTrackID())
}

func TestNextPlaylistID(t *testing.T) {
	l := NewLibrary()
	assert.Equal(t, uint32(1), l.NextPlaylistID())

	p, err := l.CreatePlaylist("Favorites", SortOrderManual)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), p.ID)
	assert.Equal(t, uint32(2), l.NextPlaylistID())
}

func TestTrackByID(t *testing.T) {
	l := NewLibrary()
	l.AppendTrack(&Track{ID: 42, Title: "Song"})

	got := l.TrackByID(42)
	require.NotNil(t, got)
	assert.Equal(t, "Song", got.Title)

	assert.Nil(t, l.TrackByID(99))
}

func TestMasterPlaylist(t *testing.T) {
	l := NewLibrary()
	assert.Nil(t, l.MasterPlaylist())

	master := l.EnsureMasterPlaylist()
	require.NotNil(t, master)
	assert.True(t, master.IsMaster)
	assert.Same(t, master, l.MasterPlaylist())

	// Calling it again must not create a second master.
	again := l.EnsureMasterPlaylist()
	assert.Same(t, master, again)
	assert.Equal(t, 1, l.PlaylistCount())
}

func TestAllTracksIsACopy(t *testing.T) {
	l := NewLibrary()
	l.AppendTrack(&Track{ID: 1})

	tracks := l.AllTracks()
	tracks[0] = &Track{ID: 999}

	assert.Equal(t, uint32(1), l.TrackByID(1).ID)
}

func TestRemoveTrackAlsoRemovesFromPlaylists(t *testing.T) {
	l := NewLibrary()
	l.AppendTrack(&Track{ID: 1})
	l.AppendTrack(&Track{ID: 2})
	p, err := l.CreatePlaylist("Mix", SortOrderManual)
	require.NoError(t, err)
	require.NoError(t, l.AddTrackToPlaylist(p.ID, 1, nil))
	require.NoError(t, l.AddTrackToPlaylist(p.ID, 2, nil))

	l.RemoveTrack(1)

	assert.Nil(t, l.TrackByID(1))
	assert.Equal(t, []uint32{2}, l.PlaylistByID(p.ID).TrackIDs)
}
