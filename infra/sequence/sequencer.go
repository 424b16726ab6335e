package sequence

import "sync/atomic"

// Sequencer issues the strictly monotonic sequence carried by every
// registry update, journal record, and outbox event.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer. Fresh start → 0; after journal replay →
// the last replayed seq.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next sequence ID.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued sequence.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset is only used after journal replay.
func (s *Sequencer) Reset(v uint64) {
	s.next.Store(v)
}
