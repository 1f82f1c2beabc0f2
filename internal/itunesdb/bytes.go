package itunesdb

import (
	"encoding/binary"
	"fmt"
	"math"
)

// errShortRead signals a length-prefixed field that ran past the end of
// the buffer it was read from — one of the two structural failures the
// parser is allowed to surface as an error rather than recovering from.
type errShortRead struct {
	what string
}

func (e *errShortRead) Error() string {
	return fmt.Sprintf("premature end of data reading %s", e.what)
}

func need(b []byte, n int, what string) error {
	if len(b) < n {
		return &errShortRead{what: what}
	}
	return nil
}

func readU16(b []byte, off int) uint16 { return binary.LittleEndian.Uint16(b[off:]) }
func readU32(b []byte, off int) uint32 { return binary.LittleEndian.Uint32(b[off:]) }
func readU64(b []byte, off int) uint64 { return binary.LittleEndian.Uint64(b[off:]) }
func readI32(b []byte, off int) int32  { return int32(binary.LittleEndian.Uint32(b[off:])) }
func readF32(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

// buf is a small append-only byte builder used to assemble atoms whose
// total length is known only after their children have been built.
type buf struct {
	b []byte
}

func newBuf(capHint int) *buf { return &buf{b: make([]byte, 0, capHint)} }

func (w *buf) bytes() []byte { return w.b }
func (w *buf) len() int      { return len(w.b) }

func (w *buf) raw(p []byte) { w.b = append(w.b, p...) }
func (w *buf) zero(n int)   { w.b = append(w.b, make([]byte, n)...) }
func (w *buf) magic(m string) { w.b = append(w.b, []byte(m)...) }

func (w *buf) u8(v uint8)   { w.b = append(w.b, v) }
func (w *buf) u16(v uint16) { w.b = appendU16(w.b, v) }
func (w *buf) u32(v uint32) { w.b = appendU32(w.b, v) }
func (w *buf) u64(v uint64) { w.b = appendU64(w.b, v) }
func (w *buf) i32(v int32)  { w.b = appendU32(w.b, uint32(v)) }
func (w *buf) f32(v float32) { w.b = appendU32(w.b, math.Float32bits(v)) }

func appendU16(b []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(b, tmp[:]...)
}

func appendU32(b []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(b, tmp[:]...)
}

func appendU64(b []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(b, tmp[:]...)
}

// writeAt32 patches a little-endian uint32 into an already-built buffer,
// used once a child's total byte length is known after the fact.
func writeAt32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:], v)
}

func writeAt16(b []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(b[off:], v)
}

func writeAt64(b []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(b[off:], v)
}

func float32bits(f float32) uint32 {
	return math.Float32bits(f)
}
