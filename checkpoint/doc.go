// Package checkpoint persists full registry snapshots to disk so
// that restarts do not replay the journal from the very beginning.
// A checkpoint is a point-in-time copy of the published snapshot;
// after one is written the journal segments it covers can be
// truncated.
//
// Checkpointing is intentionally decoupled from the write path. It
// reads through the same hazard-protected snapshot pointer as every
// other reader and never blocks writers.
package checkpoint
