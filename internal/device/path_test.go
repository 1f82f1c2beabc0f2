package device

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDevicePath(t *testing.T) {
	assert.Equal(t, ":iPod_Control:Music:F00:ABCD.mp3", DevicePath("F00", "ABCD.mp3"))
}

func TestResolvePath(t *testing.T) {
	got := ResolvePath("/mnt/ipod", ":iPod_Control:Music:F00:ABCD.mp3")
	want := filepath.Join("/mnt/ipod", "iPod_Control", "Music", "F00", "ABCD.mp3")
	assert.Equal(t, want, got)
}

func TestIsSupportedExtension(t *testing.T) {
	assert.True(t, IsSupportedExtension(".mp3"))
	assert.True(t, IsSupportedExtension(".MP3"))
	assert.True(t, IsSupportedExtension(".mp4"))
	assert.False(t, IsSupportedExtension(".flac"))
	assert.False(t, IsSupportedExtension(".ogg"))
}
