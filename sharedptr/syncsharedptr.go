package sharedptr

import (
	"sync/atomic"

	"smr/hpref"
)

// SyncSharedPtr holds at most one SharedPtr's worth of ownership in a
// slot readable by any number of goroutines. Writer operations
// (MoveFrom, CopyFrom, Drop) follow single-writer discipline: at most
// one at a time, and publishing over an occupied slot is a programming
// error. Load runs unboundedly concurrently with itself and with the
// one writer.
//
// The zero value is an empty slot.
type SyncSharedPtr[T any] struct {
	n atomic.Pointer[Node[T]]
}

// MoveFrom transfers ownership from src into the slot without touching
// the count. src is emptied.
func (s *SyncSharedPtr[T]) MoveFrom(src *SharedPtr[T]) {
	if s.n.Load() != nil {
		panic("sharedptr: publish into an occupied sync slot")
	}
	s.n.Store(src.n)
	src.n = nil
}

// CopyFrom publishes src into the slot, incrementing the count. src
// keeps its own reference.
func (s *SyncSharedPtr[T]) CopyFrom(src SharedPtr[T]) {
	if s.n.Load() != nil {
		panic("sharedptr: publish into an occupied sync slot")
	}
	if src.n != nil {
		src.n.node.Ref()
	}
	s.n.Store(src.n)
}

// Load obtains an owned SharedPtr from the slot.
//
// The returned pointer is empty when the slot was empty or when the
// promotion lost the race against a concurrent Drop (the node was
// already draining). A non-empty result is live at least until the
// caller drops it.
func (s *SyncSharedPtr[T]) Load() SharedPtr[T] {
	n := hpref.Promote[Node[T], *Node[T]](domain, &s.n)
	return SharedPtr[T]{n: n}
}

// IsNil reports whether the slot is empty. Writer-side check; readers
// should just Load.
func (s *SyncSharedPtr[T]) IsNil() bool { return s.n.Load() == nil }

// Drop unpublishes the slot and releases its reference. Like
// SharedPtr.Drop, the release that reaches zero scans before running
// the callback. Dropping an empty slot is a no-op.
func (s *SyncSharedPtr[T]) Drop() {
	n := s.n.Load()
	if n == nil {
		return
	}
	s.n.Store(nil) // unpublish, Store A
	hpref.Unref(domain, n)
}
