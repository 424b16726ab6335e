package registry

import (
	"sync/atomic"
	"time"

	"smr/sharedptr"
)

// Entry is one key/value pair of a snapshot.
type Entry struct {
	Key   string
	Value []byte
}

// Snapshot is an immutable published state. Readers hold it through a
// shared pointer; it is never mutated after Publish.
type Snapshot struct {
	Seq     uint64
	Created time.Time
	Entries []Entry
}

// Lookup finds an entry by key. Entries are kept sorted by the writer,
// but snapshots are small; linear scan matches the access pattern.
func (s *Snapshot) Lookup(key string) ([]byte, bool) {
	for i := range s.Entries {
		if s.Entries[i].Key == key {
			return s.Entries[i].Value, true
		}
	}
	return nil, false
}

// Registry publishes the current snapshot. Single-writer: Publish must
// be called from one goroutine at a time. Readers call Current
// concurrently and unboundedly; each read promotes a hazard-protected
// load into an owned reference, so a reader can keep its snapshot for
// as long as it likes without delaying the writer.
type Registry struct {
	current sharedptr.SyncSharedPtr[Snapshot]

	LastSeq atomic.Uint64
}

func New() *Registry {
	return &Registry{}
}

// Publish retires the previous snapshot and installs sp, consuming it.
// The retired snapshot's release callback fires once its last reader
// drops out and the retirement scan completes.
func (r *Registry) Publish(sp sharedptr.SharedPtr[Snapshot]) {
	if !sp.IsNil() {
		r.LastSeq.Store(sp.Get().Seq)
	}
	r.current.Drop()
	r.current.MoveFrom(&sp)
}

// Current returns an owned reference to the latest snapshot, empty if
// nothing is published yet. The caller must Drop it.
func (r *Registry) Current() sharedptr.SharedPtr[Snapshot] {
	return r.current.Load()
}

// Close retires the published snapshot. Single-writer, like Publish.
func (r *Registry) Close() {
	r.current.Drop()
}
