package market

import (
	"sync/atomic"
	"time"

	"github.com/quantego/coinsight/internal/core"
)

// SnapshotStore holds the latest full market listing. Publish atomically
// replaces the whole snapshot; readers always observe either the previous
// or the new snapshot in full, never a mix, and neither side blocks the
// other.
type SnapshotStore struct {
	snap atomic.Pointer[core.Snapshot]

	// For testing: allow time control when computing age
	now func() time.Time
}

// NewSnapshotStore creates an empty store. Get returns ErrNoData until the
// first Publish.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{now: time.Now}
}

// Publish replaces the current snapshot.
func (s *SnapshotStore) Publish(snap *core.Snapshot) {
	s.snap.Store(snap)
}

// Get returns the current snapshot and its age. Before the first Publish it
// returns core.ErrNoData.
func (s *SnapshotStore) Get() (*core.Snapshot, time.Duration, error) {
	snap := s.snap.Load()
	if snap == nil {
		return nil, 0, core.ErrNoData
	}
	return snap, s.now().Sub(snap.FetchedAt()), nil
}
