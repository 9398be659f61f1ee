package engine

import (
	"context"
	"sort"
	"time"

	"fileset/internal/hash"
	"fileset/internal/logger"
	"fileset/internal/manifest"
	"fileset/internal/model"
	"fileset/internal/scan"

	"go.uber.org/zap"
)

// Sync reconciles the current filesystem state with the stored
// manifest. In fast mode (full=false) a candidate whose recorded mtime
// and size still match is confirmed without re-hashing.
//
// Cancellation is observed between candidates, never mid-hash. An
// interrupted pass persists everything it verified so far and performs
// no deletion detection, so a partial run can never drop records.
func (e *Engine) Sync(ctx context.Context, full bool) (model.SyncReport, error) {
	var report model.SyncReport

	m, err := manifest.Load(e.manifestPath)
	if err != nil {
		return report, err
	}

	candidates, err := scan.Resolve(e.cfg.Mappings)
	if err != nil {
		return report, err
	}

	report.Found = len(candidates)

	// Never-tracked files first, then longest-stale records, so a pass
	// cut short still made progress on the data that needed it most.
	sort.SliceStable(candidates, func(i, j int) bool {
		return lastChecked(m, candidates[i]).Before(lastChecked(m, candidates[j]))
	})

	interrupted := false

	for _, c := range candidates {
		select {
		case <-ctx.Done():
			interrupted = true
		default:
		}
		if interrupted {
			break
		}

		e.syncOne(c, m, full, &report)
		e.progress()
	}

	if !interrupted {
		for vp, rec := range m {
			if rec.Exist {
				continue
			}

			delete(m, vp)
			report.Deleted++
			e.emit(model.FileEvent{Type: model.EventDeleted, VirtualPath: vp, Hash: rec.Hash})
		}
	}

	m.ClearTransient()

	if err := manifest.Save(e.manifestPath, m); err != nil {
		return report, err
	}

	report.Interrupted = interrupted
	return report, nil
}

func (e *Engine) syncOne(c scan.Candidate, m manifest.Manifest, full bool, report *model.SyncReport) {
	now := time.Now()

	mtime, size, err := scan.Stat(c.RealPath)
	if err != nil {
		logger.Log.Warn("failed to stat file",
			zap.String("path", c.RealPath),
			zap.Error(err))
		e.keepExisting(c, m)
		return
	}

	rec, tracked := m[c.VirtualPath]

	if tracked && !full && rec.Mtime == mtime && rec.Size == size {
		rec.Checked = now
		rec.Exist = true
		report.Existed++
		return
	}

	sum, err := hash.File(c.RealPath, e.hasher)
	if err != nil {
		logger.Log.Warn("failed to hash file",
			zap.String("path", c.RealPath),
			zap.Error(err))
		e.keepExisting(c, m)
		return
	}

	switch {
	case tracked && rec.Hash != sum:
		report.Changed++
		e.emit(model.FileEvent{Type: model.EventChanged, VirtualPath: c.VirtualPath, Hash: sum})
	case tracked:
		report.Existed++
	default:
		report.Added++
		e.emit(model.FileEvent{Type: model.EventAdded, VirtualPath: c.VirtualPath, Hash: sum})
	}

	m[c.VirtualPath] = &manifest.Record{
		Hash:    sum,
		Mtime:   mtime,
		Size:    size,
		Checked: now,
		Hashed:  now,
		Exist:   true,
	}
}

// keepExisting shields an already-tracked record from deletion when its
// file turned unreadable mid-pass. The record is kept untouched; only
// its hash stays unverified.
func (e *Engine) keepExisting(c scan.Candidate, m manifest.Manifest) {
	if rec, ok := m[c.VirtualPath]; ok {
		rec.Exist = true
	}
}

func lastChecked(m manifest.Manifest, c scan.Candidate) time.Time {
	if rec, ok := m[c.VirtualPath]; ok {
		return rec.Checked
	}

	// Zero time sorts new files ahead of every tracked record.
	return time.Time{}
}
