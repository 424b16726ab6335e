package hpref

import (
	"sync/atomic"
	"unsafe"

	"smr/hazptr"
	"smr/internal/cpu"
)

// Promote obtains a counted reference to the object published at src.
//
// It pins the CPU, protects the loaded pointer with a hazard pointer,
// increments the embedded count if it has not reached zero, and
// releases the slot before unpinning. Returns the zero pointer if src
// held nil, became nil mid-acquisition, or the count already hit zero
// (the object is draining). A non-nil result is guaranteed to exist
// until the caller drops it with Unref.
func Promote[T any, P interface {
	*T
	Object
}](d *hazptr.Domain, src *atomic.Pointer[T]) P {
	var zero P

	id := cpu.Pin()
	defer cpu.Unpin()

	// One protection per CPU per domain. Finding the slot occupied
	// here means a protect section on this CPU never released.
	if d.Protected(id) {
		panic("hpref: hazard slot already occupied on this CPU (unreleased protection?)")
	}
	p, h, ok := hazptr.LoadTryProtect(d, id, src)
	if !ok {
		return zero
	}
	obj := P(p)
	if !obj.HazardNode().TryRef() {
		// Lost the race against a concurrent drop: the count
		// already reached zero, the object is draining. Same as
		// not found.
		h.Release()
		return zero
	}
	h.Release()
	return obj
}

// Unref drops a counted reference. The decrement that reaches zero
// waits for in-flight protections on the object to drain, then invokes
// the release callback, exactly once.
//
// The caller must have unpublished every location through which
// Promote could reach the object before dropping the reference that
// may hit zero.
func Unref[T any, P interface {
	*T
	Object
}](d *hazptr.Domain, obj P) {
	var zero P
	if obj == zero {
		return
	}
	n := obj.HazardNode()
	c := n.refs.Add(-1)
	switch {
	case c > 0:
		return
	case c < 0:
		panic("hpref: refcount underflow")
	}
	d.Scan(unsafe.Pointer(obj), nil)
	n.reclaim()
}

// Synchronize waits until no slot in the domain protects addr.
//
// When Promote runs concurrently against locations that published
// addr, at least one Synchronize for addr must complete between the
// point where all such locations are unpublished and the Unref of the
// object's initial reference. Unref's zero-path performs this
// internally; Synchronize is for intrusive users running their own
// teardown.
func Synchronize(d *hazptr.Domain, addr unsafe.Pointer) {
	d.Scan(addr, nil)
}
