package device

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/arung-agamani/itunesdb/internal/itunesdb"
	"github.com/arung-agamani/itunesdb/internal/model"
	"github.com/arung-agamani/itunesdb/internal/rng"
)

// Store manages loading and atomically saving a library's iTunesDB file
// on disk, adapted from the same temp-file-then-rename pattern used
// elsewhere in this module for atomic writes.
type Store struct {
	mu   sync.Mutex
	path string
	src  rng.Source
}

// NewStore creates a Store for the iTunesDB file at path. The parent
// directory is created automatically if it does not exist.
func NewStore(path string, src rng.Source) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %q: %w", dir, err)
	}
	if src == nil {
		src = rng.Default()
	}
	return &Store{path: path, src: src}, nil
}

// Path returns the file path this store reads from and writes to.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the store's iTunesDB file already exists.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads and parses the store's iTunesDB file.
func (s *Store) Load() (*model.Library, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", s.path, err)
	}
	return itunesdb.Parse(data)
}

// Save serializes lib and writes it to disk atomically: write to a
// temporary file in the same directory, then rename over the real path.
// Any failure before the rename leaves the existing file untouched.
func (s *Store) Save(lib *model.Library) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := itunesdb.Serialize(lib, s.src)
	if err != nil {
		return fmt.Errorf("failed to serialize library: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "iTunesDB-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to rename temp file to %q: %w", s.path, err)
	}

	slog.Info("library saved to disk", "path", s.path, "tracks", lib.TrackCount(), "playlists", lib.PlaylistCount())
	return nil
}
