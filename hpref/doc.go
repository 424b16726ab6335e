// Package hpref chains hazard pointers to reference counting.
//
// A hazard pointer gives a cheap existence guarantee but occupies the
// CPU's only slot for its domain, so it must not be held long. A
// reference count can be held indefinitely but is unsafe to increment
// through a possibly-stale pointer. Promote bridges the two: it
// protects the load with a hazard pointer, increments the embedded
// count, and immediately releases the slot. The returned reference
// behaves like any counted reference.
//
// Teardown is two-phase: the decrement that reaches zero scans the
// domain before invoking the release callback, closing the window
// where a reader began a promotion before the object was unpublished
// but has not finished its increment.
package hpref
