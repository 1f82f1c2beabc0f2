package itunesdb

import (
	"github.com/arung-agamani/itunesdb/internal/atoms"
	"github.com/arung-agamani/itunesdb/internal/model"
	"github.com/arung-agamani/itunesdb/internal/rng"
)

// Serialize encodes a library to on-device iTunesDB bytes. It is
// deterministic except for freshly-allocated 64-bit IDs, and may mutate
// lib observably in exactly three ways before encoding: synthesizing a
// missing master playlist, refreshing the master playlist's track order,
// and replacing a zero database/library-persistent ID with a random
// nonzero value drawn from src.
func Serialize(lib *model.Library, src rng.Source) ([]byte, error) {
	lib.PrepareForSave(func() uint64 { return rng.Nonzero63(src) })

	tracks := lib.AllTracks()
	playlists := lib.AllPlaylists()

	trackRecords := make([][]byte, len(tracks))
	for i, t := range tracks {
		rec, err := buildTrackRecord(t)
		if err != nil {
			return nil, err
		}
		trackRecords[i] = rec
	}
	trackListBody := buildListHeader(atoms.MagicTrackList, len(tracks))
	for _, r := range trackRecords {
		trackListBody = append(trackListBody, r...)
	}
	trackSection := wrapSection(atoms.SectionTypeTrackList, trackListBody)

	playlistRecords := make([][]byte, len(playlists))
	for i, p := range playlists {
		rec, err := buildPlaylistRecord(p)
		if err != nil {
			return nil, err
		}
		playlistRecords[i] = rec
	}
	playlistListBody := buildListHeader(atoms.MagicPlaylistList, len(playlists))
	for _, r := range playlistRecords {
		playlistListBody = append(playlistListBody, r...)
	}
	playlistSection := wrapSection(atoms.SectionTypePlaylistList, playlistListBody)

	totalLen := dbFixedLen + len(trackSection) + len(playlistSection)

	h := make([]byte, dbFixedLen)
	copy(h[dbOffMagic:], atoms.MagicDatabaseHeader)
	writeAt32(h, dbOffHeaderLen, dbFixedLen)
	writeAt32(h, dbOffTotalLen, uint32(totalLen))
	writeAt32(h, dbOffConst1, 1)
	writeAt32(h, dbOffVersion, uint32(lib.Version))
	writeAt32(h, dbOffNumSect, 2)
	writeAt64(h, dbOffDatabaseID, lib.DatabaseID)
	writeAt16(h, dbOffConst2, 2)
	lang := lib.Language
	if len(lang) != 2 {
		lang = "en"
	}
	copy(h[dbOffLanguage:], lang)
	writeAt64(h, dbOffLibPersist, lib.LibraryPersistentID)

	out := make([]byte, 0, totalLen)
	out = append(out, h...)
	out = append(out, trackSection...)
	out = append(out, playlistSection...)
	return out, nil
}

// buildListHeader builds an mhlt/mhlp header (92 bytes) announcing count
// children of the given kind.
func buildListHeader(magic string, count int) []byte {
	h := make([]byte, listFixedLen)
	copy(h[listOffMagic:], magic)
	writeAt32(h, listOffHeaderLen, listFixedLen)
	writeAt32(h, listOffCount, uint32(count))
	return h
}

// wrapSection wraps a track-list or playlist-list body in its mhsd
// section header.
func wrapSection(sectionType uint32, body []byte) []byte {
	h := make([]byte, secFixedLen)
	copy(h[secOffMagic:], atoms.MagicSectionHeader)
	writeAt32(h, secOffHeaderLen, secFixedLen)
	writeAt32(h, secOffTotalLen, uint32(secFixedLen+len(body)))
	writeAt32(h, secOffType, sectionType)
	return append(h, body...)
}
