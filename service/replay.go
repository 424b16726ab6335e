package service

import (
	"log"

	"smr/infra/journal"
)

/*
ReplayFromJournal rebuilds the in-memory registry from the journal.

IMPORTANT:
- This MUST run before accepting traffic
- The outbox is NOT replayed; unacked events are re-sent by the
  broadcaster from their persisted state
*/

func (s *RegistryService) ReplayFromJournal(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lastSeq, err := journal.Replay(dir, func(rec *journal.Record) error {
		s.apply(rec)
		return nil
	})
	if err != nil {
		return err
	}

	// resume sequencing AFTER replay; a restored checkpoint may
	// already sit past an empty or truncated journal
	if lastSeq > s.seqGen.Current() {
		s.seqGen.Reset(lastSeq)
	}

	log.Printf("[service] journal replay completed (last seq = %d)", lastSeq)
	return nil
}
