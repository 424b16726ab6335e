// Package sharedptr exposes hazard-chained reference counting as
// value-like owned and shared pointers.
//
// A SharedPtr is thread-confined: it owns exactly one reference and is
// handed between goroutines only by explicit transfer. A SyncSharedPtr
// is a single-writer slot that many goroutines read concurrently
// through Load, which promotes a hazard-pointer-protected load into an
// owned SharedPtr.
//
// A node moves through four states: live (count >= 1, published),
// unpublished (no published reference left, count may still be
// positive), draining (count hit zero, retirement scan running), and
// reclaimed (release callback ran). Live to draining fires exactly
// once, on whichever drop observes the count reach zero; draining to
// reclaimed is unconditional once the scan returns.
package sharedptr
