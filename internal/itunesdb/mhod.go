package itunesdb

import "github.com/arung-agamani/itunesdb/internal/atoms"

// mhod string-payload sub-header: u32 encoding_marker=1, u32
// payload_byte_length, u32 encoding_flag=1, u32=0, then payload bytes.
const mhodStringSubHeaderLen = 16

// buildStringMhod wraps an already-encoded string payload (UTF-16LE, via
// atoms.EncodeText or atoms.EncodePath) in a complete mhod atom.
func buildStringMhod(typ uint32, payload []byte) []byte {
	w := newBuf(mhodFixedLen + mhodStringSubHeaderLen + len(payload))
	w.magic(atoms.MagicDataObject)
	w.u32(mhodFixedLen)
	w.u32(uint32(mhodFixedLen + mhodStringSubHeaderLen + len(payload)))
	w.u32(typ)
	w.u64(0)
	w.u32(1) // encoding_marker
	w.u32(uint32(len(payload)))
	w.u32(1) // encoding_flag
	w.u32(0)
	w.raw(payload)
	return w.bytes()
}

// buildPositionMhod builds a type-100 playlist-item position data object.
func buildPositionMhod(position uint32) []byte {
	const total = mhodFixedLen + 4
	w := newBuf(total)
	w.magic(atoms.MagicDataObject)
	w.u32(mhodFixedLen)
	w.u32(total)
	w.u32(atoms.MhodPosition)
	w.u64(0)
	w.u32(position)
	return w.bytes()
}

// mhodChild is one decoded data-object child: its type, its declared
// total length on the wire, and its body (the bytes after the 24-byte
// fixed header, up to totalLen).
type mhodChild struct {
	typ      uint32
	totalLen int
	body     []byte
}

// readMhod reads a single mhod atom from the front of b. ok is false if
// the atom's magic doesn't match, its header doesn't fit, its declared
// total length is zero, or it overruns the bytes available in b — in all
// of those cases the caller stops consuming further children of the
// current parent without treating it as an error.
func readMhod(b []byte) (child mhodChild, ok bool) {
	if len(b) < mhodFixedLen {
		return mhodChild{}, false
	}
	if string(b[mhodOffMagic:mhodOffMagic+4]) != atoms.MagicDataObject {
		return mhodChild{}, false
	}
	total := int(readU32(b, mhodOffTotalLen))
	if total <= 0 || total > len(b) {
		return mhodChild{}, false
	}
	typ := readU32(b, mhodOffType)
	return mhodChild{typ: typ, totalLen: total, body: b[mhodFixedLen:total]}, true
}

// decodeStringPayload extracts the UTF-16LE payload bytes from a string
// mhod's body (the generic sub-header form shared by every recognized
// string type).
func decodeStringPayload(body []byte) ([]byte, bool) {
	if len(body) < mhodStringSubHeaderLen {
		return nil, false
	}
	payloadLen := int(readU32(body, 4))
	start := mhodStringSubHeaderLen
	end := start + payloadLen
	if payloadLen < 0 || end > len(body) {
		return nil, false
	}
	return body[start:end], true
}

// decodePosition extracts the position field from a type-100 mhod body.
func decodePosition(body []byte) (uint32, bool) {
	if len(body) < 4 {
		return 0, false
	}
	return readU32(body, 0), true
}
