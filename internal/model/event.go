package model

type EventType string

const (
	EventAdded    EventType = "ADDED"
	EventChanged  EventType = "CHANGED"
	EventDeleted  EventType = "DELETED"
	EventMissing  EventType = "MISSING"
	EventMismatch EventType = "MISMATCH"
)

// FileEvent is one per-file observation emitted by the engine while a
// pass runs. The core never prints; a reporting layer renders these.
type FileEvent struct {
	Type        EventType
	VirtualPath string
	Hash        string
}

// SyncReport aggregates one sync pass.
type SyncReport struct {
	Found       int
	Added       int
	Changed     int
	Existed     int
	Deleted     int
	Interrupted bool
}

// StatusReport compares a fresh scan against the stored manifest
// without mutating it. Deleted is derived from the partition identity
// Deleted == Total - (Scanned - Added).
type StatusReport struct {
	Total    int
	Scanned  int
	Added    int
	Modified int
	Deleted  int
}

// Mismatch is a verified entry whose current content hash differs from
// the recorded fingerprint.
type Mismatch struct {
	VirtualPath string
	Expected    string
	Computed    string
}

// CheckReport aggregates one verification pass.
type CheckReport struct {
	Selected   int
	Mismatches []Mismatch
	Missing    []string
}

// DiffReport compares two manifests. Pure set arithmetic, no
// filesystem access.
type DiffReport struct {
	OnlyInA   []string
	OnlyInB   []string
	Differing []string
}
