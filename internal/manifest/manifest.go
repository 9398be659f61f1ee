// Package manifest holds the persisted virtual-path → record mapping
// for one fileset and its compressed on-disk codec.
package manifest

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record tracks one virtual path.
//
// Mtime is kept as the fixed-precision decimal string it was formatted
// with at stat time (6 fractional digits). It is compared as an opaque
// string so no float round-trip can drift across serialization.
type Record struct {
	Hash    string    `json:"hash"`
	Mtime   string    `json:"mtime"`
	Size    int64     `json:"size"`
	Checked time.Time `json:"checked"`
	Hashed  time.Time `json:"hashed"`

	// Exist marks that the record's file was seen during the current
	// sync pass. It lives only for the duration of one pass and is
	// stripped before every save.
	Exist bool `json:"-"`
}

// Manifest maps virtual paths to their records.
type Manifest map[string]*Record

// ClearTransient strips the per-pass Exist marker from every record.
// Both the completed and the interrupted sync paths run this before
// persisting, so a saved manifest never carries the flag.
func (m Manifest) ClearTransient() {
	for _, rec := range m {
		rec.Exist = false
	}
}

// FormatMtime renders a modification time in the manifest's fixed
// 6-digit decimal-seconds form.
func FormatMtime(t time.Time) string {
	us := t.UnixMicro()

	sign := ""
	if us < 0 {
		sign = "-"
		us = -us
	}

	return fmt.Sprintf("%s%d.%06d", sign, us/1_000_000, us%1_000_000)
}

// ParseMtime converts a stored mtime string back to microseconds since
// the epoch, for ordering. Malformed values sort first.
func ParseMtime(s string) int64 {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	sec, frac, _ := strings.Cut(s, ".")

	secs, err := strconv.ParseInt(sec, 10, 64)
	if err != nil {
		return 0
	}

	var micros int64
	if len(frac) >= 6 {
		micros, _ = strconv.ParseInt(frac[:6], 10, 64)
	} else if frac != "" {
		micros, _ = strconv.ParseInt(frac+strings.Repeat("0", 6-len(frac)), 10, 64)
	}

	us := secs*1_000_000 + micros
	if neg {
		us = -us
	}

	return us
}
