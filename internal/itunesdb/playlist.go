package itunesdb

import (
	"github.com/arung-agamani/itunesdb/internal/atoms"
	"github.com/arung-agamani/itunesdb/internal/model"
)

// buildPlaylistRecord encodes a playlist as an mhyp record: its fixed
// 108-byte header, a single title string child (skipped for the master
// playlist), and one mhip child per track reference.
func buildPlaylistRecord(p *model.Playlist) ([]byte, error) {
	var stringChildren [][]byte
	if !p.IsMaster && p.Name != "" {
		payload, err := atoms.EncodeText(p.Name)
		if err != nil {
			return nil, err
		}
		stringChildren = append(stringChildren, buildStringMhod(atoms.MhodTitle, payload))
	}

	itemChildren := make([][]byte, len(p.TrackIDs))
	for i, trackID := range p.TrackIDs {
		itemChildren[i] = buildPlaylistItem(i, trackID)
	}

	childrenLen := 0
	for _, c := range stringChildren {
		childrenLen += len(c)
	}
	for _, c := range itemChildren {
		childrenLen += len(c)
	}

	h := make([]byte, 108)
	copy(h[plOffMagic:], "mhyp")
	writeAt32(h, plOffHeaderLen, 108)
	writeAt32(h, plOffTotalLen, uint32(108+childrenLen))
	writeAt32(h, plOffNumStringCh, uint32(len(stringChildren)))
	writeAt32(h, plOffNumItemCh, uint32(len(itemChildren)))
	if p.IsMaster {
		h[plOffIsMaster] = 1
	}
	writeAt32(h, plOffTimestamp, atoms.UnixToMac(p.Timestamp))
	writeAt64(h, plOffPlaylistID, uint64(p.ID))
	writeAt16(h, plOffStringChCnt, uint16(len(stringChildren)))
	if p.IsPodcast {
		writeAt16(h, plOffIsPodcast, 1)
	}
	writeAt32(h, plOffSortOrder, uint32(p.SortOrder))

	for _, c := range stringChildren {
		h = append(h, c...)
	}
	for _, c := range itemChildren {
		h = append(h, c...)
	}
	return h, nil
}

func buildPlaylistItem(position int, trackID uint32) []byte {
	pos := buildPositionMhod(uint32(position))
	h := make([]byte, 76)
	copy(h[piOffMagic:], "mhip")
	writeAt32(h, piOffHeaderLen, 76)
	writeAt32(h, piOffTotalLen, uint32(76+len(pos)))
	writeAt32(h, piOffNumChild, 1)
	writeAt32(h, piOffGroupID, uint32(position+1))
	writeAt32(h, piOffTrackID, trackID)
	h = append(h, pos...)
	return h
}

// parsePlaylistRecord decodes a single mhyp record starting at the front
// of b. ok is false when the record's own header is malformed, in which
// case the caller stops consuming the playlist list (no error).
func parsePlaylistRecord(b []byte) (p *model.Playlist, consumed int, ok bool) {
	if len(b) < plFixedFieldsLen {
		return nil, 0, false
	}
	if string(b[plOffMagic:plOffMagic+4]) != "mhyp" {
		return nil, 0, false
	}
	total := int(readU32(b, plOffTotalLen))
	if total <= 0 || total > len(b) {
		return nil, 0, false
	}
	headerLen := int(readU32(b, plOffHeaderLen))
	if headerLen <= 0 || headerLen > total {
		headerLen = 108
	}
	numStringCh := int(readU32(b, plOffNumStringCh))
	numItemCh := int(readU32(b, plOffNumItemCh))

	playlistID := uint32(readU64(b, plOffPlaylistID))
	pl := &model.Playlist{
		ID:        playlistID,
		IsMaster:  b[plOffIsMaster] != 0,
		IsPodcast: readU16(b, plOffIsPodcast) != 0,
		SortOrder: model.SortOrder(readU32(b, plOffSortOrder)),
		Timestamp: atoms.MacToUnix(readU32(b, plOffTimestamp)),
	}

	pos := headerLen
	for i := 0; i < numStringCh && pos < total; i++ {
		child, childOK := readMhod(b[pos:total])
		if !childOK {
			return pl, total, true
		}
		if child.typ == atoms.MhodTitle {
			if raw, rawOK := decodeStringPayload(child.body); rawOK {
				if s, err := atoms.DecodeText(raw); err == nil {
					pl.Name = s
				}
			}
		}
		pos += child.totalLen
	}

	for i := 0; i < numItemCh && pos < total; i++ {
		item, itemOK := readPlaylistItem(b[pos:total])
		if !itemOK {
			return pl, total, true
		}
		pl.TrackIDs = append(pl.TrackIDs, item.trackID)
		pos += item.consumed
	}

	return pl, total, true
}

type playlistItem struct {
	trackID  uint32
	consumed int
}

func readPlaylistItem(b []byte) (playlistItem, bool) {
	if len(b) < piFixedFieldsLen {
		return playlistItem{}, false
	}
	if string(b[piOffMagic:piOffMagic+4]) != "mhip" {
		return playlistItem{}, false
	}
	total := int(readU32(b, piOffTotalLen))
	if total <= 0 || total > len(b) {
		return playlistItem{}, false
	}
	trackID := readU32(b, piOffTrackID)
	return playlistItem{trackID: trackID, consumed: total}, true
}
