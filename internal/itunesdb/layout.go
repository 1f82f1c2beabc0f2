// Package itunesdb implements the binary tagged-atom codec: Parse turns
// on-device iTunesDB bytes into a *model.Library, and Serialize turns a
// *model.Library back into bytes. The named byte offsets in this file are
// the wire field layout shared by the parser and the serializer.
package itunesdb

// Byte offsets within a track record's fixed 388-byte header, used by
// both the parser and the serializer so the two stay in lockstep.
const (
	trkOffMagic       = 0
	trkOffHeaderLen   = 4
	trkOffTotalLen    = 8
	trkOffNumChildren = 12
	trkOffUniqueID    = 16
	trkOffVisible     = 20
	trkOffFileType    = 24
	trkOffVBRFlag     = 28
	trkOffCodecFlag   = 29
	trkOffCompilation = 30
	trkOffRating      = 31
	trkOffLastMod     = 32
	trkOffSize        = 36
	trkOffDuration    = 40
	trkOffTrackNum    = 44
	trkOffTotalTracks = 48
	trkOffYear        = 52
	trkOffBitrate     = 56
	trkOffSampleRate  = 60
	trkOffVolume      = 64
	trkOffStartTime   = 68
	trkOffStopTime    = 72
	trkOffSoundcheck  = 76
	trkOffPlayCount   = 80
	trkOffPlayCount2  = 84
	trkOffLastPlayed  = 88
	trkOffDiscNum     = 92
	trkOffTotalDiscs  = 96
	trkOffUserID      = 100
	trkOffDateAdded   = 104
	trkOffBookmark    = 108
	trkOffDBID        = 112
	trkOffChecked     = 120
	trkOffAppRating   = 121
	trkOffBPM         = 122
	trkOffArtworkCnt  = 124
	trkOffFFFF        = 126
	trkOffArtworkSize = 128
	trkOffZero1       = 132
	trkOffSampleRateF = 136
	trkOffDateRelease = 140
	trkOffFormatHint  = 144
	trkOffZero2       = 146
	trkOffZero3       = 148
	trkOffZero4       = 152
	trkOffSkipCount   = 156
	trkOffLastSkipped = 160
	trkOffHasArtwork  = 164
	trkOffSkipShuffle = 165
	trkOffRememberPos = 166
	trkOffPodcastFlag = 167
	trkOffDBID2       = 168
	trkOffHasLyrics   = 176
	trkOffIsMovie     = 177
	trkOffPlayedMark  = 178
	trkOffZero5       = 179
	trkOffZero6       = 180
	trkOffPregap      = 184
	trkOffSampleCount = 188
	trkOffZero7       = 196
	trkOffPostgap     = 200
	trkOffZero8       = 204
	trkOffMediaType   = 208
	trkOffSeasonNum   = 212
	trkOffEpisodeNum  = 216
	trkOffZero24      = 220 // 24 zero bytes
	trkOffZero9       = 244
	trkOffGaplessData = 248
	trkOffZero10      = 252
	trkOffGaplessTrk  = 256
	trkOffGaplessAlb  = 258
	trkOffIntegrity   = 260 // 20 zero bytes, always zero on this device generation
	trkFixedFieldsLen = 280
)

// Byte offsets within a playlist record's fixed 108-byte header.
const (
	plOffMagic        = 0
	plOffHeaderLen    = 4
	plOffTotalLen     = 8
	plOffNumStringCh  = 12
	plOffNumItemCh    = 16
	plOffIsMaster     = 20
	plOffZero3        = 21
	plOffTimestamp    = 24
	plOffPlaylistID   = 28
	plOffZero4        = 36
	plOffStringChCnt  = 40
	plOffIsPodcast    = 42
	plOffSortOrder    = 44
	plFixedFieldsLen  = 48
)

// Byte offsets within a playlist-item record's fixed 76-byte header.
const (
	piOffMagic      = 0
	piOffHeaderLen  = 4
	piOffTotalLen   = 8
	piOffNumChild   = 12
	piOffGroupFlag  = 16
	piOffZero2      = 18
	piOffGroupID    = 20
	piOffTrackID    = 24
	piOffTimestamp  = 28
	piOffGroupRef   = 32
	piFixedFieldsLen = 36
)

// Byte offsets within the 104-byte database header.
const (
	dbOffMagic      = 0
	dbOffHeaderLen  = 4
	dbOffTotalLen   = 8
	dbOffConst1     = 12
	dbOffVersion    = 16
	dbOffNumSect    = 20
	dbOffDatabaseID = 24
	dbOffConst2     = 32
	dbOffZeroA      = 34
	dbOffZeroB      = 38
	dbOffZero24     = 46
	dbOffLanguage   = 70
	dbOffLibPersist = 72
	dbFixedLen      = 104
)

// Byte offsets within the 96-byte section header.
const (
	secOffMagic     = 0
	secOffHeaderLen = 4
	secOffTotalLen  = 8
	secOffType      = 12
	secFixedLen     = 96
)

// Byte offsets within the 92-byte track-list / playlist-list header.
const (
	listOffMagic     = 0
	listOffHeaderLen = 4
	listOffCount     = 8
	listFixedLen     = 92
)

// Byte offsets within the 24-byte data-object header.
const (
	mhodOffMagic     = 0
	mhodOffHeaderLen = 4
	mhodOffTotalLen  = 8
	mhodOffType      = 12
	mhodOffZero8     = 16
	mhodFixedLen     = 24
)
