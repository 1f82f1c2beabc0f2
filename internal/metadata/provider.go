// Package metadata defines the external metadata-provider contract spec.md
// assigns to the sync path (section 4.7): reading tag/duration fields for
// a file on disk without ever raising, and two concrete implementations
// of it.
package metadata

// Record is the set of fields a metadata provider extracts for one file.
// A provider must never fail: on internal error it returns a Record with
// every field at its documented default.
type Record struct {
	Title       string
	Artist      string
	Album       string
	AlbumArtist string
	Genre       string
	Composer    string
	Comment     string

	Year uint32

	TrackNumber uint32
	TotalTracks uint32
	DiscNumber  uint32
	TotalDiscs  uint32

	DurationMS uint32
	Bitrate    uint32
	SampleRate uint32
}

// Provider reads metadata for the file at path. It must never return an
// error; callers that want strict failure handling should check whether
// the returned Record still carries its title-from-filename default.
type Provider interface {
	Read(path string) Record
}

// defaultSampleRate is used whenever a provider cannot determine one.
const defaultSampleRate = 44100
const defaultTotalDiscs = 1
