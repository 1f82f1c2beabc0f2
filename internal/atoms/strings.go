package atoms

import (
	"strings"

	"github.com/arung-agamani/itunesdb/internal/errs"
	"golang.org/x/text/encoding/unicode"
)

// textCodec is the shared UTF-16LE codec: no BOM, no null terminator. The
// wire format carries an explicit byte-length field for every string
// payload, so the codec never needs to sniff or emit a BOM.
var textCodec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// EncodeText encodes s as UTF-16LE with no BOM and no terminator.
func EncodeText(s string) ([]byte, error) {
	enc := textCodec.NewEncoder()
	return enc.Bytes([]byte(s))
}

// DecodeText decodes a UTF-16LE byte slice with no BOM into a string.
func DecodeText(b []byte) (string, error) {
	dec := textCodec.NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodePath converts a library-facing path (either colon- or
// slash-separated) into the on-device colon-path form and encodes it as
// UTF-16LE: ensure a leading colon, then convert any remaining '/' to ':'.
func EncodePath(p string) ([]byte, error) {
	if !strings.HasPrefix(p, ":") {
		p = ":" + p
	}
	p = strings.ReplaceAll(p, "/", ":")
	b, err := EncodeText(p)
	if err != nil {
		return nil, err
	}
	if len(b) > MaxPathBytes {
		return nil, &errs.PathTooLongError{Path: p, Encoded: len(b), MaxBytes: MaxPathBytes}
	}
	return b, nil
}

// DecodePath decodes an on-device colon-path payload back to its string
// form, unchanged from how it was written (the inverse of EncodePath is
// only guaranteed for already-colon-form input; DecodePath itself performs
// no separator translation, matching the wire format's own symmetry).
func DecodePath(b []byte) (string, error) {
	return DecodeText(b)
}
