package service

import (
	"log"
	"sort"
	"sync"
	"time"

	"smr/domain/registry"
	"smr/infra/journal"
	"smr/infra/memory"
	"smr/infra/outbox"
	"smr/infra/sequence"
	"smr/sharedptr"
)

/*
RegistryService is the ONLY write entry point into the system.

All coordination between:
- domain (registry)
- infra (journal, outbox, memory)
happens here. Commands are serialized on mu so the registry sees a
single writer; gRPC handlers call in concurrently. Reads go straight
to the registry and never take the lock.
*/

type SnapshotNode = sharedptr.Node[registry.Snapshot]

type RegistryService struct {
	mu sync.Mutex // serializes the command path

	reg    *registry.Registry
	pool   *memory.Pool[SnapshotNode]
	seqGen *sequence.Sequencer
	jnl    *journal.Journal
	ob     *outbox.Outbox
}

// NewRegistryService wires all dependencies. No globals.
func NewRegistryService(
	reg *registry.Registry,
	pool *memory.Pool[SnapshotNode],
	seqGen *sequence.Sequencer,
	jnl *journal.Journal,
	ob *outbox.Outbox,
) *RegistryService {
	return &RegistryService{
		reg:    reg,
		pool:   pool,
		seqGen: seqGen,
		jnl:    jnl,
		ob:     ob,
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// Put records and publishes one key update. Returns the assigned
// sequence number. Safe to call from concurrent handlers.
func (s *RegistryService) Put(key string, value []byte) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := journal.NewRecord(journal.RecordPut, s.seqGen.Next(), key, value)

	// durable intent first
	if err := s.jnl.Append(rec); err != nil {
		return 0, err
	}

	s.apply(rec)
	s.enqueueEvent(rec)
	return rec.Seq, nil
}

// Delete removes a key. A delete of an absent key still consumes a
// sequence and is journaled; replay stays deterministic.
func (s *RegistryService) Delete(key string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := journal.NewRecord(journal.RecordDelete, s.seqGen.Next(), key, nil)

	if err := s.jnl.Append(rec); err != nil {
		return 0, err
	}

	s.apply(rec)
	s.enqueueEvent(rec)
	return rec.Seq, nil
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// Get returns the value for key in the latest snapshot.
func (s *RegistryService) Get(key string) ([]byte, bool) {
	cur := s.reg.Current()
	if cur.IsNil() {
		return nil, false
	}
	defer cur.Drop()
	v, ok := cur.Get().Lookup(key)
	if !ok {
		return nil, false
	}
	// the snapshot is dropped on return; hand out a copy
	return append([]byte(nil), v...), true
}

// Snapshot returns a consistent copy of all entries.
func (s *RegistryService) Snapshot() (uint64, []registry.Entry) {
	cur := s.reg.Current()
	if cur.IsNil() {
		return 0, nil
	}
	defer cur.Drop()

	snap := cur.Get()
	out := make([]registry.Entry, len(snap.Entries))
	copy(out, snap.Entries)
	return snap.Seq, out
}

//
// ──────────────────────────────────────────────────────────
// Internals
// ──────────────────────────────────────────────────────────
//

// apply builds the successor snapshot and publishes it, retiring the
// predecessor. The retired node comes back through the pool once its
// last reader drops out.
func (s *RegistryService) apply(rec *journal.Record) {
	cur := s.reg.Current()

	var entries []registry.Entry
	if !cur.IsNil() {
		prev := cur.Get().Entries
		entries = make([]registry.Entry, 0, len(prev)+1)
		for _, e := range prev {
			if e.Key != rec.Key {
				entries = append(entries, e)
			}
		}
	}
	if rec.Type == journal.RecordPut {
		entries = append(entries, registry.Entry{Key: rec.Key, Value: rec.Value})
		sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	}
	cur.Drop()

	n := s.pool.Get()
	n.Value = registry.Snapshot{
		Seq:     rec.Seq,
		Created: time.Now(),
		Entries: entries,
	}
	sp := sharedptr.Adopt(n, s.recycle)
	s.reg.Publish(sp)
}

// recycle is the node release callback: runs exactly once per retired
// snapshot, after the retirement scan confirms no reader holds it.
func (s *RegistryService) recycle(n *SnapshotNode) {
	n.Value = registry.Snapshot{}
	s.pool.Put(n)
}

// enqueueEvent is best-effort: the journal is the source of truth,
// and an event that never reaches the outbox has nothing for the
// broadcaster to retry. Failures are logged so an operator knows to
// run a republish.
func (s *RegistryService) enqueueEvent(rec *journal.Record) {
	payload, err := journal.ProtoSerializer{}.Encode(rec)
	if err != nil {
		log.Printf("[service] encode event seq=%d: %v", rec.Seq, err)
		return
	}
	if err := s.ob.PutNew(rec.Seq, payload); err != nil {
		log.Printf("[service] outbox put seq=%d: %v", rec.Seq, err)
	}
}

// Close retires the current snapshot and releases it to the pool.
func (s *RegistryService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg.Close()
}
