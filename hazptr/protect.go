package hazptr

import (
	"sync/atomic"
	"unsafe"
)

// Handle is the proof of an active protection: the slot an address was
// published into, and the address itself. It is created by TryProtect
// or LoadTryProtect and consumed by Release. A handle is local to the
// acquiring goroutine and must be released before the next acquisition
// on the same CPU and domain.
type Handle struct {
	slot *Slot
	addr unsafe.Pointer
}

// Addr returns the protected address, nil for an empty handle.
func (h Handle) Addr() unsafe.Pointer { return h.addr }

// Release clears the slot with a release-ordered store, ending the
// existence guarantee. Releasing an empty handle is a no-op.
func (h Handle) Release() {
	if h.slot == nil {
		return
	}
	if h.slot.load() != h.addr {
		panic("hazptr: released handle does not match its slot")
	}
	h.slot.clear()
}

// TryProtect stores addr into cpu's slot of the domain.
//
// The caller must already hold an existence guarantee on addr (it
// cannot be freed concurrently) and must be pinned to cpu. It fails
// without storing when the slot is occupied: a single protection per
// CPU per domain, no reentrancy. A nil addr fails; there is nothing to
// protect.
func TryProtect[T any](d *Domain, cpu int, addr *T) (Handle, bool) {
	if addr == nil {
		return Handle{}, false
	}
	s := d.slot(cpu)
	if s.load() != nil {
		return Handle{}, false
	}
	p := unsafe.Pointer(addr)
	s.store(p) // Store B
	return Handle{slot: s, addr: p}, true
}

// LoadTryProtect loads src and protects the loaded pointer.
//
// It publishes the first read into the slot, then re-reads src: if the
// two reads disagree the object may already have been retired, so the
// slot is cleared and the handshake retries with the new value. The
// slot store and the revalidation load are both sequentially
// consistent, so a concurrent retirer either sees the slot occupied or
// the revalidation sees the unpublish; never neither.
//
// Returns not-ok when src holds nil, becomes nil mid-acquisition, or
// the slot is occupied. The caller must be pinned to cpu.
func LoadTryProtect[T any](d *Domain, cpu int, src *atomic.Pointer[T]) (*T, Handle, bool) {
	addr := src.Load()
	for {
		h, ok := TryProtect(d, cpu, addr)
		if !ok {
			return nil, Handle{}, false
		}
		addr2 := src.Load() // Load A
		if addr2 == addr {
			return addr2, h, true
		}
		// src changed under us: drop the stale protection, retry
		// with whatever is published now.
		h.slot.clear()
		if addr2 == nil {
			return nil, Handle{}, false
		}
		addr = addr2
	}
}
