// Package atoms holds the fixed layout constants and identifiers of the
// iTunesDB tagged-atom wire format: magic strings, fixed header sizes,
// the Mac-epoch time base, and the data-object type codes used by both
// the parser and the serializer.
package atoms

import "time"

// Magic identifiers for each atom kind, as they appear on the wire.
const (
	MagicDatabaseHeader = "mhbd"
	MagicSectionHeader  = "mhsd"
	MagicTrackList      = "mhlt"
	MagicTrackRecord    = "mhit"
	MagicPlaylistList   = "mhlp"
	MagicPlaylistRecord = "mhyp"
	MagicPlaylistItem   = "mhip"
	MagicDataObject     = "mhod"
)

// Section types carried in the section header's type field.
const (
	SectionTypeTrackList    uint32 = 1
	SectionTypePlaylistList uint32 = 2
)

// Fixed header sizes in bytes, per the wire format table.
const (
	DatabaseHeaderSize  = 104
	SectionHeaderSize   = 96
	TrackListHeaderSize = 92
	PlaylistListHeader  = 92
	TrackRecordHeader   = 388
	PlaylistRecordSize  = 108
	PlaylistItemSize    = 76
	DataObjectHeaderSize = 24
)

// MaxPathBytes is the encoded-byte budget for an on-device path.
const MaxPathBytes = 112

// Recognized mhod (data object) string types.
const (
	MhodTitle       uint32 = 1
	MhodLocation    uint32 = 2
	MhodAlbum       uint32 = 3
	MhodArtist      uint32 = 4
	MhodGenre       uint32 = 5
	MhodComposer    uint32 = 12
	MhodComment     uint32 = 8
	MhodAlbumArtist uint32 = 22
	MhodPosition    uint32 = 100
)

// macEpochOffset is the number of seconds between the Mac HFS+ epoch
// (1904-01-01T00:00:00Z) and the Unix epoch.
const macEpochOffset = 2082844800

// MacToUnix converts a Mac-epoch timestamp (seconds since 1904-01-01) to a
// Unix time. A zero input maps to the zero time.Time.
func MacToUnix(macSeconds uint32) time.Time {
	if macSeconds == 0 {
		return time.Time{}
	}
	return time.Unix(int64(macSeconds)-macEpochOffset, 0).UTC()
}

// UnixToMac converts a time.Time to a Mac-epoch second count. The zero
// time.Time maps to zero.
func UnixToMac(t time.Time) uint32 {
	if t.IsZero() {
		return 0
	}
	sec := t.Unix() + macEpochOffset
	if sec < 0 {
		return 0
	}
	return uint32(sec)
}
