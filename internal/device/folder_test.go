package device

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arung-agamani/itunesdb/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureMusicFolders(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, EnsureMusicFolders(root))

	for _, name := range []string{"F00", "F25", "F49"} {
		info, err := os.Stat(filepath.Join(root, "iPod_Control", "Music", name))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestSelectFolderPrefersFewestEntriesLowestIndexTiebreak(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, EnsureMusicFolders(root))

	// Put one file in F00 and F01 so both have the same count; F02
	// onward are all empty and tied at zero, so the lowest index (F02)
	// must win.
	for _, name := range []string{"F00", "F01"} {
		f, err := os.Create(filepath.Join(root, "iPod_Control", "Music", name, "existing.mp3"))
		require.NoError(t, err)
		f.Close()
	}

	idx, name, err := SelectFolder(root)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "F02", name)
}

func TestSelectFolderAllEqualPicksFirst(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, EnsureMusicFolders(root))

	idx, name, err := SelectFolder(root)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "F00", name)
}

func TestAllocateFilenameAvoidsCollisions(t *testing.T) {
	root := t.TempDir()
	folder := filepath.Join(root, "F00")
	require.NoError(t, os.MkdirAll(folder, 0o755))

	src := rng.Fixed(1)
	first, err := AllocateFilename(src, folder, ".mp3")
	require.NoError(t, err)
	assert.Len(t, first, 8) // 4-char stem + ".mp3"

	f, err := os.Create(filepath.Join(folder, first))
	require.NoError(t, err)
	f.Close()

	second, err := AllocateFilename(src, folder, ".mp3")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
