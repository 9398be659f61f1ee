package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "missing.fsd"))
	require.NoError(t, err)
	assert.Empty(t, m)
	assert.NotNil(t, m)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.fsd")
	require.NoError(t, os.WriteFile(path, []byte("definitely not zstd"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt manifest")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.fsd")

	checked := time.Date(2026, 3, 14, 15, 9, 26, 535897000, time.UTC)
	hashed := checked.Add(-time.Hour)

	in := Manifest{
		"v/x.txt": {
			Hash:    "0123456789abcdef0123456789abcdef",
			Mtime:   "1700000000.123456",
			Size:    5,
			Checked: checked,
			Hashed:  hashed,
		},
		"v/sub/y.bin": {
			Hash:    "ffffffffffffffffffffffffffffffff",
			Mtime:   "0.000001",
			Size:    0,
			Checked: checked,
			Hashed:  checked,
		},
	}

	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	require.Len(t, out, 2)

	for vp, want := range in {
		got, ok := out[vp]
		require.True(t, ok, vp)
		assert.Equal(t, want.Hash, got.Hash)
		assert.Equal(t, want.Mtime, got.Mtime, "mtime must survive byte-exact")
		assert.Equal(t, want.Size, got.Size)
		assert.True(t, want.Checked.Equal(got.Checked))
		assert.True(t, want.Hashed.Equal(got.Hashed))
	}
}

func TestSaveNeverPersistsTransientFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.fsd")

	in := Manifest{
		"v/x.txt": {Hash: "aa", Mtime: "1.000000", Size: 1, Exist: true},
	}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.False(t, out["v/x.txt"].Exist)
}

func TestSaveReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "set.fsd")

	require.NoError(t, Save(path, Manifest{"v/a": {Hash: "aa"}}))
	require.NoError(t, Save(path, Manifest{"v/b": {Hash: "bb"}}))

	out, err := Load(path)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Contains(t, out, "v/b")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
}
