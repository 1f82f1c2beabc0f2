package itunesdb

import (
	"github.com/arung-agamani/itunesdb/internal/atoms"
	"github.com/arung-agamani/itunesdb/internal/errs"
	"github.com/arung-agamani/itunesdb/internal/model"
)

// Parse decodes on-device iTunesDB bytes into a *model.Library. Parse is
// pure: it performs no I/O and never mutates its input. Corruption
// confined to a single track, playlist, or data object is recovered from
// locally per the robustness rules below; only damage to the top-level
// structure fails the whole parse.
func Parse(data []byte) (*model.Library, error) {
	if len(data) < dbFixedLen {
		return nil, &errs.InvalidDatabaseError{Reason: "file shorter than the database header"}
	}
	if string(data[dbOffMagic:dbOffMagic+4]) != atoms.MagicDatabaseHeader {
		return nil, &errs.InvalidDatabaseError{Reason: "missing mhbd database header identifier"}
	}

	headerLen := int(readU32(data, dbOffHeaderLen))
	if headerLen <= 0 || headerLen > len(data) {
		headerLen = dbFixedLen
	}

	lib := model.NewLibrary()
	lib.Version = uint16(readU32(data, dbOffVersion))
	lib.DatabaseID = readU64(data, dbOffDatabaseID)
	lib.Language = string(data[dbOffLanguage : dbOffLanguage+2])
	lib.LibraryPersistentID = readU64(data, dbOffLibPersist)

	numSections := int(readU32(data, dbOffNumSect))
	pos := headerLen

	for i := 0; i < numSections; i++ {
		if pos+secFixedLen > len(data) {
			return nil, &errs.InvalidDatabaseError{Reason: "missing expected mhsd section identifier"}
		}
		if string(data[pos+secOffMagic:pos+secOffMagic+4]) != atoms.MagicSectionHeader {
			return nil, &errs.InvalidDatabaseError{Reason: "missing expected mhsd section identifier"}
		}

		total := int(readU32(data, pos+secOffTotalLen))
		if total <= 0 || pos+total > len(data) {
			// Length problem at the section level: stop consuming further
			// top-level children, but the database itself already parsed.
			break
		}
		sectionType := readU32(data, pos+secOffType)
		sectionHeaderLen := int(readU32(data, pos+secOffHeaderLen))
		if sectionHeaderLen <= 0 || sectionHeaderLen > total {
			sectionHeaderLen = secFixedLen
		}

		body := data[pos+sectionHeaderLen : pos+total]
		switch sectionType {
		case atoms.SectionTypeTrackList:
			parseTrackList(body, lib)
		case atoms.SectionTypePlaylistList:
			parsePlaylistList(body, lib)
		}

		pos += total
	}

	return lib, nil
}

func parseTrackList(body []byte, lib *model.Library) {
	if len(body) < listFixedLen || string(body[listOffMagic:listOffMagic+4]) != atoms.MagicTrackList {
		return
	}
	numTracks := int(readU32(body, listOffCount))
	headerLen := int(readU32(body, listOffHeaderLen))
	if headerLen <= 0 || headerLen > len(body) {
		headerLen = listFixedLen
	}

	pos := headerLen
	for i := 0; i < numTracks && pos < len(body); i++ {
		t, consumed, ok := parseTrackRecord(body[pos:])
		if !ok {
			break
		}
		lib.Tracks = append(lib.Tracks, t)
		pos += consumed
	}
}

func parsePlaylistList(body []byte, lib *model.Library) {
	if len(body) < listFixedLen || string(body[listOffMagic:listOffMagic+4]) != atoms.MagicPlaylistList {
		return
	}
	numPlaylists := int(readU32(body, listOffCount))
	headerLen := int(readU32(body, listOffHeaderLen))
	if headerLen <= 0 || headerLen > len(body) {
		headerLen = listFixedLen
	}

	pos := headerLen
	for i := 0; i < numPlaylists && pos < len(body); i++ {
		p, consumed, ok := parsePlaylistRecord(body[pos:])
		if !ok {
			break
		}
		lib.Playlists = append(lib.Playlists, p)
		pos += consumed
	}
}
