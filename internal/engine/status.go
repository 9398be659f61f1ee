package engine

import (
	"fileset/internal/manifest"
	"fileset/internal/model"
	"fileset/internal/scan"
)

// Status compares a fresh filesystem enumeration against the stored
// manifest without touching it. Deleted is not counted directly but
// derived from the partition identity
// deleted == total − (scanned − added), which holds exactly.
func (e *Engine) Status() (model.StatusReport, error) {
	var report model.StatusReport

	m, err := manifest.Load(e.manifestPath)
	if err != nil {
		return report, err
	}

	candidates, err := scan.Resolve(e.cfg.Mappings)
	if err != nil {
		return report, err
	}

	report.Total = len(m)
	report.Scanned = len(candidates)

	for _, c := range candidates {
		rec, tracked := m[c.VirtualPath]
		if !tracked {
			report.Added++
			continue
		}

		mtime, size, err := scan.Stat(c.RealPath)
		if err != nil {
			continue
		}

		if rec.Mtime != mtime || rec.Size != size {
			report.Modified++
		}
	}

	report.Deleted = report.Total - (report.Scanned - report.Added)

	return report, nil
}
