package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	rec Record
}

func (f fakeProvider) Read(path string) Record {
	return f.rec
}

func TestChainFirstProviderWins(t *testing.T) {
	a := fakeProvider{rec: Record{Title: "From A", Artist: "Artist A"}}
	b := fakeProvider{rec: Record{Title: "From B", Album: "Album B"}}

	c := NewChain(a, b)
	got := c.Read("irrelevant.mp3")

	assert.Equal(t, "From A", got.Title)
	assert.Equal(t, "Artist A", got.Artist)
	assert.Equal(t, "Album B", got.Album)
}

func TestChainFillsOnlyZeroFields(t *testing.T) {
	a := fakeProvider{rec: Record{DurationMS: 0, Bitrate: 128}}
	b := fakeProvider{rec: Record{DurationMS: 210000, Bitrate: 320}}

	c := NewChain(a, b)
	got := c.Read("irrelevant.mp3")

	assert.Equal(t, uint32(210000), got.DurationMS)
	assert.Equal(t, uint32(128), got.Bitrate)
}

func TestChainEmpty(t *testing.T) {
	c := NewChain()
	got := c.Read("irrelevant.mp3")
	assert.Equal(t, Record{}, got)
}

func TestTagProviderFallsBackToFilenameStem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "My Song.mp3")
	require.NoError(t, os.WriteFile(path, []byte("not a real tag"), 0o644))

	p := NewTagProvider()
	got := p.Read(path)

	assert.Equal(t, "My Song", got.Title)
	assert.Equal(t, uint32(0), got.SampleRate)
}

func TestChainAppliesDefaultSampleRateWhenNoProviderSetsOne(t *testing.T) {
	a := fakeProvider{rec: Record{Title: "From A"}}

	c := NewChain(a)
	got := c.Read("irrelevant.mp3")

	assert.Equal(t, uint32(defaultSampleRate), got.SampleRate)
}

func TestChainLetsProbedSampleRateOverrideTagDefault(t *testing.T) {
	tagResult := fakeProvider{rec: Record{Title: "Tagged"}}
	probeResult := fakeProvider{rec: Record{SampleRate: 48000}}

	c := NewChain(tagResult, probeResult)
	got := c.Read("irrelevant.mp3")

	assert.Equal(t, uint32(48000), got.SampleRate)
}

func TestTagProviderMissingFile(t *testing.T) {
	p := NewTagProvider()
	got := p.Read("/no/such/file/at/all.mp3")
	assert.Equal(t, "all", got.Title)
}
