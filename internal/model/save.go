package model

import "time"

// PrepareForSave applies the serializer's three permitted observable
// mutations ahead of encoding: synthesizing a master playlist if one is
// missing, refreshing the master playlist's track order to match the
// current track list, and replacing a zero database or library
// persistent ID with a fresh one from freshID. It returns the (possibly
// newly created) master playlist.
func (l *Library) PrepareForSave(freshID func() uint64) *Playlist {
	l.mu.Lock()
	defer l.mu.Unlock()

	master := l.masterPlaylistUnsafe()
	if master == nil {
		master = &Playlist{
			ID:        l.nextPlaylistIDUnsafe(),
			Name:      "Library",
			IsMaster:  true,
			SortOrder: SortOrderManual,
			Timestamp: time.Now(),
		}
		l.Playlists = append([]*Playlist{master}, l.Playlists...)
	}

	ids := make([]uint32, len(l.Tracks))
	for i, t := range l.Tracks {
		ids[i] = t.ID
	}
	master.TrackIDs = ids

	if l.DatabaseID == 0 {
		l.DatabaseID = freshID()
	}
	if l.LibraryPersistentID == 0 {
		l.LibraryPersistentID = freshID()
	}
	return master
}
