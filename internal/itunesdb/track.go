package itunesdb

import (
	"github.com/arung-agamani/itunesdb/internal/atoms"
	"github.com/arung-agamani/itunesdb/internal/model"
)

// stringChild names one optional string data-object attached to a track,
// in the exact emission order the wire format requires.
type stringChild struct {
	typ   uint32
	value string
	path  bool
}

func trackStringChildren(t *model.Track) []stringChild {
	return []stringChild{
		{atoms.MhodTitle, t.Title, false},
		{atoms.MhodLocation, t.Path, true},
		{atoms.MhodArtist, t.Artist, false},
		{atoms.MhodAlbum, t.Album, false},
		{atoms.MhodAlbumArtist, t.AlbumArtist, false},
		{atoms.MhodGenre, t.Genre, false},
		{atoms.MhodComposer, t.Composer, false},
		{atoms.MhodComment, t.Comment, false},
	}
}

func formatHintFor(ft model.FileType) uint16 {
	if ft == model.FileTypeMP3 {
		return 0x000C
	}
	return 0x0033
}

// buildTrackRecord encodes a single track as an mhit record: the fixed
// 388-byte header followed by its non-empty string data objects.
func buildTrackRecord(t *model.Track) ([]byte, error) {
	var children [][]byte
	for _, c := range trackStringChildren(t) {
		if c.value == "" {
			continue
		}
		var payload []byte
		var err error
		if c.path {
			payload, err = atoms.EncodePath(c.value)
		} else {
			payload, err = atoms.EncodeText(c.value)
		}
		if err != nil {
			return nil, err
		}
		children = append(children, buildStringMhod(c.typ, payload))
	}

	childrenLen := 0
	for _, c := range children {
		childrenLen += len(c)
	}
	h := make([]byte, 388)
	copy(h[trkOffMagic:], "mhit")
	writeAt32(h, trkOffHeaderLen, 388)
	writeAt32(h, trkOffTotalLen, uint32(388+childrenLen))
	writeAt32(h, trkOffNumChildren, uint32(len(children)))
	writeAt32(h, trkOffUniqueID, t.ID)
	writeAt32(h, trkOffVisible, 1)
	writeAt32(h, trkOffFileType, uint32(t.FileType))
	if t.FileType == model.FileTypeMP3 {
		h[trkOffCodecFlag] = 1
	}
	if t.Compilation {
		h[trkOffCompilation] = 1
	}
	h[trkOffRating] = t.Rating
	writeAt32(h, trkOffLastMod, atoms.UnixToMac(t.LastModified))
	writeAt32(h, trkOffSize, t.SizeBytes)
	writeAt32(h, trkOffDuration, t.DurationMS)
	writeAt32(h, trkOffTrackNum, t.TrackNumber)
	writeAt32(h, trkOffTotalTracks, t.TotalTracks)
	writeAt32(h, trkOffYear, t.Year)
	writeAt32(h, trkOffBitrate, t.Bitrate)
	writeAt32(h, trkOffSampleRate, t.SampleRate<<16)
	writeAt32(h, trkOffVolume, 0)
	writeAt32(h, trkOffPlayCount, t.PlayCount)
	writeAt32(h, trkOffPlayCount2, t.PlayCount)
	writeAt32(h, trkOffLastPlayed, atoms.UnixToMac(t.LastPlayed))
	writeAt32(h, trkOffDiscNum, t.DiscNumber)
	writeAt32(h, trkOffTotalDiscs, t.TotalDiscs)
	writeAt32(h, trkOffDateAdded, atoms.UnixToMac(t.DateAdded))
	writeAt64(h, trkOffDBID, t.DBID)
	h[trkOffChecked] = 0
	h[trkOffAppRating] = t.Rating
	writeAt16(h, trkOffArtworkCnt, 0)
	writeAt16(h, trkOffFFFF, 0xFFFF)
	writeAt32(h, trkOffSampleRateF, float32bits(float32(t.SampleRate)))
	writeAt16(h, trkOffFormatHint, formatHintFor(t.FileType))
	writeAt32(h, trkOffSkipCount, t.SkipCount)
	h[trkOffHasArtwork] = 0x02
	h[trkOffPodcastFlag] = 0
	writeAt64(h, trkOffDBID2, t.DBID)
	writeAt32(h, trkOffPregap, t.Gapless.PregapSamples)
	writeAt32(h, trkOffPostgap, t.Gapless.PostgapSamples)
	writeAt32(h, trkOffMediaType, uint32(t.MediaType))
	writeAt32(h, trkOffGaplessData, t.Gapless.Data)
	writeAt16(h, trkOffGaplessTrk, t.Gapless.TrackFlag)
	writeAt16(h, trkOffGaplessAlb, t.Gapless.AlbumFlag)

	for _, c := range children {
		h = append(h, c...)
	}
	return h, nil
}

// parseTrackRecord decodes a single mhit record starting at the front of
// b. consumed is the record's declared total length. ok is false when the
// record's own header is malformed or doesn't fit in b, in which case the
// caller stops consuming the track list (no error).
func parseTrackRecord(b []byte) (t *model.Track, consumed int, ok bool) {
	if len(b) < trkFixedFieldsLen {
		return nil, 0, false
	}
	if string(b[trkOffMagic:trkOffMagic+4]) != "mhit" {
		return nil, 0, false
	}
	total := int(readU32(b, trkOffTotalLen))
	if total <= 0 || total > len(b) {
		return nil, 0, false
	}
	headerLen := int(readU32(b, trkOffHeaderLen))
	if headerLen <= 0 || headerLen > total {
		headerLen = 388
	}
	numChildren := int(readU32(b, trkOffNumChildren))

	track := &model.Track{
		ID:          readU32(b, trkOffUniqueID),
		FileType:    model.FileType(readU32(b, trkOffFileType)),
		Compilation: b[trkOffCompilation] != 0,
		Rating:      b[trkOffRating],
		LastModified: atoms.MacToUnix(readU32(b, trkOffLastMod)),
		SizeBytes:   readU32(b, trkOffSize),
		DurationMS:  readU32(b, trkOffDuration),
		TrackNumber: readU32(b, trkOffTrackNum),
		TotalTracks: readU32(b, trkOffTotalTracks),
		Year:        readU32(b, trkOffYear),
		Bitrate:     readU32(b, trkOffBitrate),
		SampleRate:  readU32(b, trkOffSampleRate) >> 16,
		PlayCount:   readU32(b, trkOffPlayCount),
		LastPlayed:  atoms.MacToUnix(readU32(b, trkOffLastPlayed)),
		DiscNumber:  readU32(b, trkOffDiscNum),
		TotalDiscs:  readU32(b, trkOffTotalDiscs),
		DateAdded:   atoms.MacToUnix(readU32(b, trkOffDateAdded)),
		DBID:        readU64(b, trkOffDBID),
		SkipCount:   readU32(b, trkOffSkipCount),
		MediaType:   model.MediaType(readU32(b, trkOffMediaType)),
		Gapless: model.Gapless{
			Data:           readU32(b, trkOffGaplessData),
			TrackFlag:      readU16(b, trkOffGaplessTrk),
			AlbumFlag:      readU16(b, trkOffGaplessAlb),
			PregapSamples:  readU32(b, trkOffPregap),
			PostgapSamples: readU32(b, trkOffPostgap),
		},
	}

	pos := headerLen
	for i := 0; i < numChildren && pos < total; i++ {
		child, childOK := readMhod(b[pos:total])
		if !childOK {
			break
		}
		applyTrackStringChild(track, child)
		pos += child.totalLen
	}

	return track, total, true
}

func applyTrackStringChild(t *model.Track, c mhodChild) {
	switch c.typ {
	case atoms.MhodLocation:
		raw, ok := decodeStringPayload(c.body)
		if !ok {
			return
		}
		if s, err := atoms.DecodePath(raw); err == nil {
			t.Path = s
		}
	case atoms.MhodTitle, atoms.MhodArtist, atoms.MhodAlbum, atoms.MhodAlbumArtist,
		atoms.MhodGenre, atoms.MhodComposer, atoms.MhodComment:
		raw, ok := decodeStringPayload(c.body)
		if !ok {
			return
		}
		s, err := atoms.DecodeText(raw)
		if err != nil {
			return
		}
		switch c.typ {
		case atoms.MhodTitle:
			t.Title = s
		case atoms.MhodArtist:
			t.Artist = s
		case atoms.MhodAlbum:
			t.Album = s
		case atoms.MhodAlbumArtist:
			t.AlbumArtist = s
		case atoms.MhodGenre:
			t.Genre = s
		case atoms.MhodComposer:
			t.Composer = s
		case atoms.MhodComment:
			t.Comment = s
		}
	}
}
