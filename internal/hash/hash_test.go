package hash

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexRe = regexp.MustCompile(`^[0-9a-f]{32}$`)

func TestLookup(t *testing.T) {
	h, err := Lookup("murmur128")
	require.NoError(t, err)
	assert.Equal(t, "murmur128", h.Name())

	_, err = Lookup("sha256")
	require.ErrorIs(t, err, ErrUnsupportedAlgorithm)
	assert.Contains(t, err.Error(), "sha256")
}

func TestMurmur128Sum(t *testing.T) {
	h, err := Lookup("murmur128")
	require.NoError(t, err)

	// MurmurHash3 x64 128-bit of empty input with seed 0 is zero.
	assert.Equal(t, "00000000000000000000000000000000", h.Sum(nil))

	sum := h.Sum([]byte("hello"))
	assert.Regexp(t, hexRe, sum)
	assert.Equal(t, sum, h.Sum([]byte("hello")), "fingerprint must be deterministic")
	assert.NotEqual(t, sum, h.Sum([]byte("hello!")))
	assert.NotEqual(t, sum, h.Sum([]byte("Hello")))
}

func TestFile(t *testing.T) {
	h, err := Lookup("murmur128")
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "x.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	sum, err := File(path, h)
	require.NoError(t, err)
	assert.Equal(t, h.Sum([]byte("hello")), sum)

	_, err = File(filepath.Join(dir, "missing.txt"), h)
	require.Error(t, err)
}
