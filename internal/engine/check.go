package engine

import (
	"context"
	"os"
	"sort"
	"sync"

	"fileset/internal/hash"
	"fileset/internal/logger"
	"fileset/internal/manifest"
	"fileset/internal/model"
	"fileset/internal/scan"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Check re-hashes the given percentage of manifest entries, oldest
// recorded mtime first, and reports hash mismatches and files missing
// from their resolved real paths. The manifest is never mutated or
// saved by this pass.
func (e *Engine) Check(ctx context.Context, percentage float64) (model.CheckReport, error) {
	var report model.CheckReport

	m, err := manifest.Load(e.manifestPath)
	if err != nil {
		return report, err
	}

	type entry struct {
		vp  string
		rec *manifest.Record
	}

	entries := make([]entry, 0, len(m))
	for vp, rec := range m {
		entries = append(entries, entry{vp: vp, rec: rec})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := manifest.ParseMtime(entries[i].rec.Mtime), manifest.ParseMtime(entries[j].rec.Mtime)
		if a != b {
			return a < b
		}
		return entries[i].vp < entries[j].vp
	})

	n := int(float64(len(entries)) * percentage / 100)
	if n > len(entries) {
		n = len(entries)
	}
	if n < 0 {
		n = 0
	}

	entries = entries[:n]
	report.Selected = len(entries)

	var mu sync.Mutex
	p := pool.New().WithMaxGoroutines(e.workers)

	for _, en := range entries {
		en := en
		select {
		case <-ctx.Done():
			p.Wait()
			return report, ctx.Err()
		default:
		}

		p.Go(func() {
			defer e.progress()

			realPath, ok := scan.RealPathFor(en.vp, e.cfg.Mappings)
			if ok {
				if _, err := os.Stat(realPath); err != nil {
					ok = false
				}
			}

			if !ok {
				mu.Lock()
				report.Missing = append(report.Missing, en.vp)
				mu.Unlock()
				e.emit(model.FileEvent{Type: model.EventMissing, VirtualPath: en.vp})
				return
			}

			sum, err := hash.File(realPath, e.hasher)
			if err != nil {
				logger.Log.Warn("failed to hash file",
					zap.String("path", realPath),
					zap.Error(err))
				return
			}

			if sum != en.rec.Hash {
				mu.Lock()
				report.Mismatches = append(report.Mismatches, model.Mismatch{
					VirtualPath: en.vp,
					Expected:    en.rec.Hash,
					Computed:    sum,
				})
				mu.Unlock()
				e.emit(model.FileEvent{Type: model.EventMismatch, VirtualPath: en.vp, Hash: sum})
			}
		})
	}

	p.Wait()

	sort.Strings(report.Missing)
	sort.Slice(report.Mismatches, func(i, j int) bool {
		return report.Mismatches[i].VirtualPath < report.Mismatches[j].VirtualPath
	})

	return report, nil
}
