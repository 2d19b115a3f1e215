package repository

import (
	"sync"

	"voltstore/store"
)

// MemorySnapshotRepo keeps the snapshot in-process: nothing survives a
// restart. Used for ephemeral demo runs and in tests.
type MemorySnapshotRepo struct {
	mu    sync.Mutex
	snap  store.Snapshot
	saved bool

	// Saves counts successful writes, handy for asserting that a mutation
	// actually triggered persistence.
	Saves int
}

func NewMemorySnapshotRepository() *MemorySnapshotRepo {
	return &MemorySnapshotRepo{}
}

func (r *MemorySnapshotRepo) Load() (store.Snapshot, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap, r.saved, nil
}

func (r *MemorySnapshotRepo) Save(snap store.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap = snap
	r.saved = true
	r.Saves++
	return nil
}
