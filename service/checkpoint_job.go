package service

import (
	"time"

	"smr/checkpoint"
	"smr/domain/registry"
	"smr/sharedptr"
)

func (s *RegistryService) StartCheckpointJob(
	dir string,
	interval time.Duration,
) {
	w := &checkpoint.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for range t.C {
			seq, entries := s.Snapshot()
			if seq == 0 {
				continue
			}

			if err := w.Write(seq, entries); err != nil {
				continue
			}

			// Journal segments covered by the checkpoint
			_ = s.jnl.TruncateBefore(seq)

			// GC outbox (acked only)
			_ = s.ob.TruncateAckedUpTo(seq)
		}
	}()
}

// Restore publishes the checkpointed state as the initial snapshot.
// Must run before journal replay; replaying records the checkpoint
// already covers is harmless, both commands are idempotent per key.
func (s *RegistryService) Restore(c checkpoint.Checkpoint) {
	if c.Seq == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.pool.Get()
	n.Value = registry.Snapshot{
		Seq:     c.Seq,
		Created: c.Created,
		Entries: c.Entries,
	}
	s.reg.Publish(sharedptr.Adopt(n, s.recycle))
	s.seqGen.Reset(c.Seq)
}
