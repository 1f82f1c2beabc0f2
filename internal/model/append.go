package model

import "time"

// AppendTrack adds a fully constructed track to the library. Callers are
// responsible for giving it a unique ID, typically via NextTrackID.
func (l *Library) AppendTrack(t *Track) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Tracks = append(l.Tracks, t)
}

// RemoveTrack deletes the track with the given ID from the library and
// from every playlist that references it. It is a no-op if the track
// doesn't exist.
func (l *Library) RemoveTrack(id uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, t := range l.Tracks {
		if t.ID == id {
			l.Tracks = append(l.Tracks[:i], l.Tracks[i+1:]...)
			break
		}
	}
	for _, p := range l.Playlists {
		idx := p.IndexOfTrack(id)
		if idx >= 0 {
			p.TrackIDs = append(p.TrackIDs[:idx], p.TrackIDs[idx+1:]...)
		}
	}
}

// EnsureMasterPlaylist returns the library's master playlist, creating an
// empty one if none exists yet.
func (l *Library) EnsureMasterPlaylist() *Playlist {
	l.mu.Lock()
	defer l.mu.Unlock()

	if master := l.masterPlaylistUnsafe(); master != nil {
		return master
	}
	master := &Playlist{
		ID:        l.nextPlaylistIDUnsafe(),
		Name:      "Library",
		IsMaster:  true,
		SortOrder: SortOrderManual,
		Timestamp: time.Now(),
	}
	l.Playlists = append([]*Playlist{master}, l.Playlists...)
	return master
}
