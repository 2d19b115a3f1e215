package repository

import "voltstore/store"

// SnapshotRepository persists the whole store as one JSON blob under a
// single namespaced key, mirroring the original per-browser storage model.
// Load reports exists=false on first run so the caller can decide whether
// to seed.
type SnapshotRepository interface {
	Load() (snap store.Snapshot, exists bool, err error)
	Save(snap store.Snapshot) error
}
