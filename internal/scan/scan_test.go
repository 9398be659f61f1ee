package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"fileset/internal/config"
	"fileset/internal/scan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "x.txt"), "x")
	writeFile(t, filepath.Join(root, "sub", "deep", "y.txt"), "y")

	candidates, err := scan.Resolve([]config.Mapping{
		{RealRoot: root, VirtualRoot: "v"},
	})
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	byVirtual := map[string]string{}
	for _, c := range candidates {
		byVirtual[c.VirtualPath] = c.RealPath
	}

	assert.Equal(t, filepath.Join(root, "x.txt"), byVirtual["v/x.txt"])
	assert.Equal(t, filepath.Join(root, "sub", "deep", "y.txt"), byVirtual["v/sub/deep/y.txt"],
		"virtual paths join with forward slashes on every platform")
}

func TestResolveMultipleRoots(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	writeFile(t, filepath.Join(rootA, "a.txt"), "a")
	writeFile(t, filepath.Join(rootB, "b.txt"), "b")

	candidates, err := scan.Resolve([]config.Mapping{
		{RealRoot: rootA, VirtualRoot: "v/a"},
		{RealRoot: rootB, VirtualRoot: "v/b"},
	})
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "v/a/a.txt", candidates[0].VirtualPath)
	assert.Equal(t, "v/b/b.txt", candidates[1].VirtualPath)
}

func TestResolveDuplicateVirtualPathLastWins(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	writeFile(t, filepath.Join(rootA, "x.txt"), "from a")
	writeFile(t, filepath.Join(rootB, "x.txt"), "from b")

	candidates, err := scan.Resolve([]config.Mapping{
		{RealRoot: rootA, VirtualRoot: "v"},
		{RealRoot: rootB, VirtualRoot: "v"},
	})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "v/x.txt", candidates[0].VirtualPath)
	assert.Equal(t, filepath.Join(rootB, "x.txt"), candidates[0].RealPath)
}

func TestRealPathFor(t *testing.T) {
	mappings := []config.Mapping{
		{RealRoot: "/data/first", VirtualRoot: "v"},
		{RealRoot: "/data/second", VirtualRoot: "v"},
		{RealRoot: "/data/w", VirtualRoot: "w"},
	}

	real, ok := scan.RealPathFor("v/sub/x.txt", mappings)
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/data/first", "sub", "x.txt"), real,
		"first matching mapping in configuration order wins")

	real, ok = scan.RealPathFor("w/y.txt", mappings)
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/data/w", "y.txt"), real)

	_, ok = scan.RealPathFor("unmapped/z.txt", mappings)
	assert.False(t, ok)
}

func TestStat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.txt")
	writeFile(t, path, "hello")

	mtime, size, err := scan.Stat(path)
	require.NoError(t, err)
	assert.EqualValues(t, 5, size)
	assert.Regexp(t, `^\d+\.\d{6}$`, mtime)

	_, _, err = scan.Stat(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
