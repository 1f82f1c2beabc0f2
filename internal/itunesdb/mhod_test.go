package itunesdb

import (
	"testing"

	"github.com/arung-agamani/itunesdb/internal/atoms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndReadStringMhod(t *testing.T) {
	payload, err := atoms.EncodeText("Title Text")
	require.NoError(t, err)

	raw := buildStringMhod(atoms.MhodTitle, payload)
	child, ok := readMhod(raw)
	require.True(t, ok)
	assert.Equal(t, atoms.MhodTitle, child.typ)
	assert.Equal(t, len(raw), child.totalLen)

	decoded, ok := decodeStringPayload(child.body)
	require.True(t, ok)
	s, err := atoms.DecodeText(decoded)
	require.NoError(t, err)
	assert.Equal(t, "Title Text", s)
}

func TestBuildAndReadPositionMhod(t *testing.T) {
	raw := buildPositionMhod(7)
	child, ok := readMhod(raw)
	require.True(t, ok)
	assert.Equal(t, atoms.MhodPosition, child.typ)

	pos, ok := decodePosition(child.body)
	require.True(t, ok)
	assert.Equal(t, uint32(7), pos)
}

func TestReadMhodRejectsBadMagic(t *testing.T) {
	garbage := make([]byte, mhodFixedLen)
	copy(garbage, "xxxx")
	_, ok := readMhod(garbage)
	assert.False(t, ok)
}

func TestReadMhodRejectsOverrunLength(t *testing.T) {
	raw := buildStringMhod(atoms.MhodTitle, []byte{0x01, 0x02})
	truncated := raw[:len(raw)-4]
	_, ok := readMhod(truncated)
	assert.False(t, ok)
}
