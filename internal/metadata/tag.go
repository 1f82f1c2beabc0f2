package metadata

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// TagProvider reads ID3/MP4 tag fields via github.com/dhowden/tag. Any
// read or decode failure falls back to the filename-stem default per the
// Provider contract.
type TagProvider struct{}

func NewTagProvider() *TagProvider {
	return &TagProvider{}
}

func (p *TagProvider) Read(path string) Record {
	rec := Record{
		Title:      stemOf(path),
		TotalDiscs: defaultTotalDiscs,
	}

	f, err := os.Open(path)
	if err != nil {
		return rec
	}
	defer f.Close()

	m, ok := readTags(f)
	if !ok {
		return rec
	}

	if t := m.Title(); t != "" {
		rec.Title = t
	}
	rec.Artist = m.Artist()
	rec.Album = m.Album()
	rec.AlbumArtist = m.AlbumArtist()
	rec.Genre = m.Genre()
	rec.Composer = m.Composer()
	rec.Comment = m.Comment()
	if y := m.Year(); y > 0 {
		rec.Year = uint32(y)
	}
	trackNum, trackTotal := m.Track()
	rec.TrackNumber = uint32(trackNum)
	rec.TotalTracks = uint32(trackTotal)
	discNum, discTotal := m.Disc()
	rec.DiscNumber = uint32(discNum)
	if discTotal > 0 {
		rec.TotalDiscs = uint32(discTotal)
	}
	return rec
}

// readTags calls into the tag library behind a recover, since malformed
// input has been known to panic deep in third-party tag parsers rather
// than return a clean error. A panic is treated the same as a read error:
// ok is false and the caller falls back to filename-stem defaults.
func readTags(f *os.File) (m tag.Metadata, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			m, ok = nil, false
		}
	}()
	parsed, err := tag.ReadFrom(f)
	if err != nil {
		return nil, false
	}
	return parsed, true
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
