package hazptr

import (
	"fmt"
	"runtime"
	"unsafe"

	"smr/internal/cpu"
)

// spin iterations before yielding the processor to the scheduler.
const scanSpinThreshold = 1000

// Domain is a named, process-lifetime table of one hazard slot per
// logical CPU. Independent domains never interact: an address protected
// in one domain is invisible to scans of another.
//
// The table is sized at creation and never resized.
type Domain struct {
	name  string
	slots []Slot
}

// New creates a hazard pointer domain with one slot per logical CPU.
func New(name string) *Domain {
	return &Domain{
		name:  name,
		slots: make([]Slot, cpu.Count()),
	}
}

func (d *Domain) Name() string { return d.name }

// Slots returns the fixed number of slots in the domain.
func (d *Domain) Slots() int { return len(d.slots) }

func (d *Domain) slot(cpu int) *Slot { return &d.slots[cpu] }

// Scan waits for addr to leave every slot of the domain.
//
// The caller must have unpublished addr first: no remaining published
// pointer may let a reader re-protect it. Scan's loads are ordered
// after that unpublish store (both are sequentially consistent), which
// is the retirement-side half of the handshake.
//
// With a nil onMatch, Scan busy-waits (yielding between checks) until
// each slot holds something other than addr; once it returns, no reader
// is protecting addr and the memory may be freed. Termination assumes
// readers release their slots in bounded time.
//
// With a non-nil onMatch, Scan does not block: it invokes onMatch once
// per slot currently holding addr and returns. The caller arranges its
// own notification, e.g. forcing the matching CPU through a scheduling
// point, and re-scans afterwards.
//
// A domain must not be scanned concurrently by two retirers for the
// same address.
func (d *Domain) Scan(addr unsafe.Pointer, onMatch func(cpu int, slot *Slot)) {
	if addr == nil {
		return
	}
	for i := range d.slots {
		s := &d.slots[i]
		if onMatch != nil {
			if s.load() == addr { // Load B
				onMatch(i, s)
			}
			continue
		}
		for n := 0; s.load() == addr; n++ { // Load B
			if n >= scanSpinThreshold {
				runtime.Gosched()
				n = 0
			}
		}
	}
}

// Protected reports whether cpu's slot currently holds an address.
// Only meaningful to the slot's owner (pinned to cpu); anyone else
// gets a stale snapshot.
func (d *Domain) Protected(cpu int) bool {
	return d.slots[cpu].load() != nil
}

// Occupied reports how many slots currently hold an address. Snapshot
// only, for diagnostics.
func (d *Domain) Occupied() int {
	n := 0
	for i := range d.slots {
		if d.slots[i].load() != nil {
			n++
		}
	}
	return n
}

// Dump prints a short summary for debugging / monitoring.
func (d *Domain) Dump() {
	fmt.Printf("hazptr.Domain{name=%q, slots=%d, occupied=%d}\n",
		d.name, len(d.slots), d.Occupied())
}
