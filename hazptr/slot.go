package hazptr

import (
	"sync/atomic"
	"unsafe"
)

// Slot holds at most one protected address. It is written only by its
// owning CPU (pinned) and read by any thread running a scan.
type Slot struct {
	addr unsafe.Pointer
	// keep each slot on its own cache line
	_ [56]byte
}

func (s *Slot) load() unsafe.Pointer {
	return atomic.LoadPointer(&s.addr)
}

func (s *Slot) store(p unsafe.Pointer) {
	atomic.StorePointer(&s.addr, p)
}

func (s *Slot) clear() {
	atomic.StorePointer(&s.addr, nil)
}
