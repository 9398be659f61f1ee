// Package scan expands real-root → virtual-root mappings into the set
// of files a sync pass has to consider.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"fileset/internal/config"
	"fileset/internal/logger"
	"fileset/internal/manifest"

	"go.uber.org/zap"
)

// Candidate is one file found under a configured real root, addressed
// by its virtual path.
type Candidate struct {
	RealPath    string
	VirtualPath string
}

// Resolve walks every mapping's real root in order and returns one
// candidate per reachable regular file. If two mappings produce the
// same virtual path, the later mapping wins.
func Resolve(mappings []config.Mapping) ([]Candidate, error) {
	var candidates []Candidate
	index := make(map[string]int)

	for _, m := range mappings {
		root := m.RealRoot

		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Log.Warn("skipping unreadable path",
					zap.String("path", p),
					zap.Error(err))
				return nil
			}

			if d.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(root, p)
			if err != nil {
				return err
			}

			c := Candidate{
				RealPath:    p,
				VirtualPath: path.Join(m.VirtualRoot, filepath.ToSlash(rel)),
			}

			if i, ok := index[c.VirtualPath]; ok {
				candidates[i] = c
			} else {
				index[c.VirtualPath] = len(candidates)
				candidates = append(candidates, c)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	return candidates, nil
}

// RealPathFor resolves a virtual path back to its expected real
// location: the first mapping in config order whose virtual root
// prefixes the path wins.
func RealPathFor(virtualPath string, mappings []config.Mapping) (string, bool) {
	for _, m := range mappings {
		prefix := m.VirtualRoot
		if !strings.HasPrefix(virtualPath, prefix) {
			continue
		}

		rel := strings.TrimPrefix(virtualPath, prefix)
		rel = strings.TrimPrefix(rel, "/")

		return filepath.Join(m.RealRoot, filepath.FromSlash(rel)), true
	}

	return "", false
}

// Stat reads the change-detector metadata for one real file.
func Stat(realPath string) (mtime string, size int64, err error) {
	info, err := os.Stat(realPath)
	if err != nil {
		return "", 0, err
	}

	return manifest.FormatMtime(info.ModTime()), info.Size(), nil
}
