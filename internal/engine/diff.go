package engine

import (
	"sort"

	"fileset/internal/manifest"
	"fileset/internal/model"
)

// Diff compares two manifests: paths only in a, paths only in b, and
// paths in both whose hashes differ. Swapping the arguments swaps the
// only-in sets and leaves the differing set unchanged.
func Diff(a, b manifest.Manifest) model.DiffReport {
	var report model.DiffReport

	for vp, rec := range a {
		other, ok := b[vp]
		switch {
		case !ok:
			report.OnlyInA = append(report.OnlyInA, vp)
		case other.Hash != rec.Hash:
			report.Differing = append(report.Differing, vp)
		}
	}

	for vp := range b {
		if _, ok := a[vp]; !ok {
			report.OnlyInB = append(report.OnlyInB, vp)
		}
	}

	sort.Strings(report.OnlyInA)
	sort.Strings(report.OnlyInB)
	sort.Strings(report.Differing)

	return report
}
