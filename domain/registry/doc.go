// Package registry implements the in-memory snapshot registry: a
// single writer publishes immutable versioned snapshots, and any
// number of readers obtain them lock-free through hazard-pointer
// protected shared pointers. A retired snapshot is reclaimed as soon
// as its last reader lets go, without waiting for a grace period.
package registry
