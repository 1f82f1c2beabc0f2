package model

import (
	"time"

	"github.com/arung-agamani/itunesdb/internal/errs"
)

// CreatePlaylist adds a new, empty playlist with the given name and sort
// order. Fails with *errs.DuplicateError if the name is already in use.
func (l *Library) CreatePlaylist(name string, sortOrder SortOrder) (*Playlist, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.playlistByNameUnsafe(name) != nil {
		return nil, &errs.DuplicateError{Name: name}
	}
	p := &Playlist{
		ID:        l.nextPlaylistIDUnsafe(),
		Name:      name,
		SortOrder: sortOrder,
		Timestamp: time.Now(),
	}
	l.Playlists = append(l.Playlists, p)
	return p, nil
}

// DeletePlaylist removes the playlist with the given ID. Fails with
// *errs.NotFoundError if it doesn't exist, or *errs.MasterProtectedError if
// it is the master playlist.
func (l *Library) DeletePlaylist(id uint32) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.playlistByIDUnsafe(id)
	if p == nil {
		return &errs.NotFoundError{PlaylistID: id}
	}
	if p.IsMaster {
		return &errs.MasterProtectedError{PlaylistID: id}
	}
	for i, pp := range l.Playlists {
		if pp.ID == id {
			l.Playlists = append(l.Playlists[:i], l.Playlists[i+1:]...)
			break
		}
	}
	return nil
}

// RenamePlaylist renames the playlist with the given ID. Renaming to the
// playlist's current name is always allowed even if another playlist were
// (impossibly) to share it; renaming to a name held by a different
// playlist fails with *errs.DuplicateError.
func (l *Library) RenamePlaylist(id uint32, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.playlistByIDUnsafe(id)
	if p == nil {
		return &errs.NotFoundError{PlaylistID: id}
	}
	if p.IsMaster {
		return &errs.MasterProtectedError{PlaylistID: id}
	}
	if name != p.Name {
		if existing := l.playlistByNameUnsafe(name); existing != nil {
			return &errs.DuplicateError{Name: name}
		}
	}
	p.Name = name
	return nil
}

// AddTrackToPlaylist inserts trackID into the playlist at position pos,
// clamped to [0, len]. A nil pos appends to the end.
func (l *Library) AddTrackToPlaylist(playlistID, trackID uint32, pos *int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.playlistByIDUnsafe(playlistID)
	if p == nil {
		return &errs.NotFoundError{PlaylistID: playlistID}
	}
	if l.trackByIDUnsafe(trackID) == nil {
		return &errs.TrackNotFoundError{TrackID: trackID}
	}
	if p.ContainsTrack(trackID) {
		return &errs.AlreadyPresentError{PlaylistID: playlistID, TrackID: trackID}
	}

	insertAt := len(p.TrackIDs)
	if pos != nil {
		insertAt = clamp(*pos, 0, len(p.TrackIDs))
	}
	p.TrackIDs = append(p.TrackIDs, 0)
	copy(p.TrackIDs[insertAt+1:], p.TrackIDs[insertAt:])
	p.TrackIDs[insertAt] = trackID
	return nil
}

// RemoveTrackFromPlaylist removes trackID from the playlist.
func (l *Library) RemoveTrackFromPlaylist(playlistID, trackID uint32) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.playlistByIDUnsafe(playlistID)
	if p == nil {
		return &errs.NotFoundError{PlaylistID: playlistID}
	}
	idx := p.IndexOfTrack(trackID)
	if idx < 0 {
		return &errs.NotPresentError{PlaylistID: playlistID, TrackID: trackID}
	}
	p.TrackIDs = append(p.TrackIDs[:idx], p.TrackIDs[idx+1:]...)
	return nil
}

// ReorderPlaylist replaces the playlist's track order with newOrder. Fails
// with *errs.OrderMismatchError if newOrder is not a permutation of the
// playlist's current track IDs.
func (l *Library) ReorderPlaylist(playlistID uint32, newOrder []uint32) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.playlistByIDUnsafe(playlistID)
	if p == nil {
		return &errs.NotFoundError{PlaylistID: playlistID}
	}
	if !sameTrackSet(p.TrackIDs, newOrder) {
		return &errs.OrderMismatchError{PlaylistID: playlistID}
	}
	p.TrackIDs = append([]uint32(nil), newOrder...)
	return nil
}

// MoveTrackInPlaylist repositions trackID to newPos, clamped to
// [0, len-1].
func (l *Library) MoveTrackInPlaylist(playlistID, trackID uint32, newPos int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.playlistByIDUnsafe(playlistID)
	if p == nil {
		return &errs.NotFoundError{PlaylistID: playlistID}
	}
	idx := p.IndexOfTrack(trackID)
	if idx < 0 {
		return &errs.NotPresentError{PlaylistID: playlistID, TrackID: trackID}
	}
	p.TrackIDs = append(p.TrackIDs[:idx], p.TrackIDs[idx+1:]...)
	newPos = clamp(newPos, 0, len(p.TrackIDs))
	p.TrackIDs = append(p.TrackIDs, 0)
	copy(p.TrackIDs[newPos+1:], p.TrackIDs[newPos:])
	p.TrackIDs[newPos] = trackID
	return nil
}

// ClearPlaylist removes all tracks from the playlist.
func (l *Library) ClearPlaylist(playlistID uint32) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.playlistByIDUnsafe(playlistID)
	if p == nil {
		return &errs.NotFoundError{PlaylistID: playlistID}
	}
	if p.IsMaster {
		return &errs.MasterProtectedError{PlaylistID: playlistID}
	}
	p.TrackIDs = nil
	return nil
}

// DuplicatePlaylist creates a new playlist named newName with a deep copy
// of the source playlist's track IDs.
func (l *Library) DuplicatePlaylist(id uint32, newName string) (*Playlist, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	src := l.playlistByIDUnsafe(id)
	if src == nil {
		return nil, &errs.NotFoundError{PlaylistID: id}
	}
	if l.playlistByNameUnsafe(newName) != nil {
		return nil, &errs.DuplicateError{Name: newName}
	}
	cp := &Playlist{
		ID:        l.nextPlaylistIDUnsafe(),
		Name:      newName,
		TrackIDs:  append([]uint32(nil), src.TrackIDs...),
		SortOrder: src.SortOrder,
		Timestamp: time.Now(),
	}
	l.Playlists = append(l.Playlists, cp)
	return cp, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sameTrackSet(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[uint32]int, len(a))
	for _, id := range a {
		counts[id]++
	}
	for _, id := range b {
		counts[id]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}
