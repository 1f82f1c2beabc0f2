package atoms

import (
	"strings"
	"testing"

	"github.com/arung-agamani/itunesdb/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

func TestTextRoundTrip(t *testing.T) {
	cases := []string{"", "Song Title", "Café del Mar", "日本語"}
	for _, s := range cases {
		encoded, err := EncodeText(s)
		require.NoError(t, err)
		decoded, err := DecodeText(encoded)
		require.NoError(t, err)
		assert.Equal(t, s, decoded)
	}
}

func TestEncodeTextHasNoBOM(t *testing.T) {
	encoded, err := EncodeText("A")
	require.NoError(t, err)
	require.Len(t, encoded, 2)
	assert.NotEqual(t, byte(0xFF), encoded[0])
	assert.NotEqual(t, byte(0xFE), encoded[0])
}

func TestEncodePathLeadingColon(t *testing.T) {
	got, err := EncodePath("iPod_Control:Music:F00:ABCD.mp3")
	require.NoError(t, err)

	want, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().
		Bytes([]byte(":iPod_Control:Music:F00:ABCD.mp3"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEncodePathSlashSubstitution(t *testing.T) {
	got, err := EncodePath("/iPod_Control/Music/F00/X.mp3")
	require.NoError(t, err)

	want, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().
		Bytes([]byte("::iPod_Control:Music:F00:X.mp3"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEncodePathRoundTrip(t *testing.T) {
	paths := []string{
		"iPod_Control:Music:F12:WXYZ.m4a",
		"/iPod_Control/Music/F49/AAAA.wav",
	}
	for _, p := range paths {
		encoded, err := EncodePath(p)
		require.NoError(t, err)
		decoded, err := DecodePath(encoded)
		require.NoError(t, err)
		reencoded, err := EncodePath(decoded)
		require.NoError(t, err)
		assert.Equal(t, encoded, reencoded)
	}
}

func TestEncodePathBoundary(t *testing.T) {
	// Every ASCII rune, the leading ':' included, costs 2 bytes encoded.
	// 55 runes + the leading colon = 56 runes = 112 bytes.
	ok := strings.Repeat("a", 55)
	_, err := EncodePath(ok)
	require.NoError(t, err)

	tooLong := strings.Repeat("a", 56)
	_, err = EncodePath(tooLong)
	var pathTooLong *errs.PathTooLongError
	require.ErrorAs(t, err, &pathTooLong)
	assert.Equal(t, 114, pathTooLong.Encoded)
	assert.Equal(t, MaxPathBytes, pathTooLong.MaxBytes)
}
