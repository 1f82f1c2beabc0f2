// Package service wraps the library model, device store, and sync engine
// in a single mutex-guarded facade for the management API's handlers,
// matching the handler/service split used throughout this module's
// lineage. Serializing every mutating call through one mutex is what
// keeps concurrent HTTP requests from interleaving library mutations
// (the library is otherwise a single-owner data structure).
package service

import (
	"context"
	"sync"

	"github.com/arung-agamani/itunesdb/internal/device"
	"github.com/arung-agamani/itunesdb/internal/metadata"
	"github.com/arung-agamani/itunesdb/internal/model"
	"github.com/arung-agamani/itunesdb/internal/rng"
)

// LibraryService coordinates the in-memory library, its on-device store,
// and the sync engine.
type LibraryService struct {
	mu         sync.Mutex
	lib        *model.Library
	store      *device.Store
	mountRoot  string
	provider   metadata.Provider
	src        rng.Source
}

func NewLibraryService(lib *model.Library, store *device.Store, mountRoot string, provider metadata.Provider, src rng.Source) *LibraryService {
	return &LibraryService{lib: lib, store: store, mountRoot: mountRoot, provider: provider, src: src}
}

// Summary is a read-only snapshot of the library's size.
type Summary struct {
	TrackCount    int
	PlaylistCount int
	MasterID      uint32
}

func (s *LibraryService) Summary() Summary {
	master := s.lib.MasterPlaylist()
	var masterID uint32
	if master != nil {
		masterID = master.ID
	}
	return Summary{
		TrackCount:    s.lib.TrackCount(),
		PlaylistCount: s.lib.PlaylistCount(),
		MasterID:      masterID,
	}
}

func (s *LibraryService) Tracks() []*model.Track {
	return s.lib.AllTracks()
}

func (s *LibraryService) Playlists() []*model.Playlist {
	return s.lib.AllPlaylists()
}

func (s *LibraryService) CreatePlaylist(name string, sortOrder model.SortOrder) (*model.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lib.CreatePlaylist(name, sortOrder)
}

func (s *LibraryService) DeletePlaylist(id uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lib.DeletePlaylist(id)
}

func (s *LibraryService) RenamePlaylist(id uint32, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lib.RenamePlaylist(id, name)
}

func (s *LibraryService) AddTrackToPlaylist(playlistID, trackID uint32, pos *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lib.AddTrackToPlaylist(playlistID, trackID, pos)
}

func (s *LibraryService) RemoveTrackFromPlaylist(playlistID, trackID uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lib.RemoveTrackFromPlaylist(playlistID, trackID)
}

func (s *LibraryService) ReorderPlaylist(playlistID uint32, newOrder []uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lib.ReorderPlaylist(playlistID, newOrder)
}

func (s *LibraryService) DuplicatePlaylist(id uint32, newName string) (*model.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lib.DuplicatePlaylist(id, newName)
}

// SyncFile places one file on the device and registers it as a track.
func (s *LibraryService) SyncFile(path string, checkDuplicate bool) (*model.Track, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return device.SyncFile(s.lib, s.mountRoot, path, s.provider, s.src, checkDuplicate)
}

// SyncFolder places every supported file in dir onto the device.
func (s *LibraryService) SyncFolder(ctx context.Context, dir string, recursive, checkDuplicate bool, onProgress device.ProgressFunc) ([]device.SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return device.SyncFolder(ctx, s.lib, s.mountRoot, dir, recursive, s.provider, s.src, checkDuplicate, onProgress)
}

// RemoveTrack deletes a track from the library and its on-device file.
func (s *LibraryService) RemoveTrack(id uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return device.RemoveTrack(s.lib, s.mountRoot, id)
}

// Save atomically persists the library to its iTunesDB file.
func (s *LibraryService) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Save(s.lib)
}
