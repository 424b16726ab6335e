// Package cpu identifies the executing logical CPU and pins the calling
// goroutine to it for the duration of a hazard-pointer critical section.
//
// Slot tables are sized once, at process start. Raising GOMAXPROCS after
// init is not supported: a pin returning an id beyond the captured count
// panics rather than indexing out of a fixed table.
package cpu

import (
	"fmt"
	"runtime"
	_ "unsafe"
)

//go:linkname procPin runtime.procPin
func procPin() int

//go:linkname procUnpin runtime.procUnpin
func procUnpin()

// count is fixed for the process lifetime.
var count = maxInt(runtime.GOMAXPROCS(0), runtime.NumCPU())

// Count returns the number of logical CPUs a domain must provision slots for.
func Count() int {
	return count
}

// Pin disables preemption of the calling goroutine and returns the id of the
// logical CPU it runs on. Every Pin must be paired with an Unpin, and the
// section in between must be non-blocking and bounded.
func Pin() int {
	id := procPin()
	if id >= count {
		procUnpin()
		panic(fmt.Sprintf("cpu: pinned to processor %d, table sized for %d (GOMAXPROCS raised after init?)", id, count))
	}
	return id
}

// Unpin re-enables preemption.
func Unpin() {
	procUnpin()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
