// Package model defines the in-memory library data model: Track,
// Playlist, and Library, along with the lookup and ID-allocation
// operations spec.md assigns to the library model (section 4.4).
package model

import "time"

// FileType identifies an audio/video container the device recognizes. Each
// value is the extension's four ASCII bytes read in big-endian order ("MP3 "
// becomes 0x4D503320); the codec writes it as a little-endian uint32, so the
// bytes on disk are 20 33 50 4D. This matches the original source's
// FileType enum.
type FileType uint32

const (
	FileTypeMP3 FileType = 0x4D503320
	FileTypeAAC FileType = 0x41414320
	FileTypeM4A FileType = 0x4D344120
	FileTypeM4P FileType = 0x4D345020
	FileTypeWAV FileType = 0x57415620
)

// MediaType classifies what kind of media a track is, matching the
// device's mhit media_type field.
type MediaType uint32

const (
	MediaTypeAudioVideo   MediaType = 0x0
	MediaTypeAudio        MediaType = 0x1
	MediaTypeVideo        MediaType = 0x2
	MediaTypePodcast      MediaType = 0x4
	MediaTypeVideoPodcast MediaType = 0x6
	MediaTypeAudiobook    MediaType = 0x8
	MediaTypeMusicVideo   MediaType = 0x20
	MediaTypeTVShow       MediaType = 0x40
)

// Gapless carries the five gapless-playback fields stored alongside a
// track's timing information.
type Gapless struct {
	Data        uint32
	TrackFlag   uint16
	AlbumFlag   uint16
	PregapSamples  uint32
	PostgapSamples uint32
}

// Track is a single media item in the library.
type Track struct {
	ID   uint32
	DBID uint64

	Path string // on-device colon path, e.g. ":iPod_Control:Music:F00:ABCD.mp3"

	DurationMS uint32
	Bitrate    uint32
	SampleRate uint32
	SizeBytes  uint32

	TrackNumber uint32
	TotalTracks uint32
	DiscNumber  uint32
	TotalDiscs  uint32
	Year        uint32

	Rating     uint8 // 0-100, step 20
	PlayCount  uint32
	SkipCount  uint32

	DateAdded    time.Time
	LastModified time.Time
	LastPlayed   time.Time

	FileType  FileType
	MediaType MediaType

	Compilation bool

	Title       string
	Artist      string
	Album       string
	AlbumArtist string
	Genre       string
	Composer    string
	Comment     string

	Gapless Gapless
}
