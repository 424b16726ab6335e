// Package hazptr implements hazard-pointer safe memory reclamation.
//
// A reader publishes the address it is about to dereference into its
// CPU's slot, revalidates the source, and then holds an existence
// guarantee until it releases the slot. A retirer unpublishes the
// address and scans every slot in the domain before freeing it.
//
// Each domain provisions exactly one slot per logical CPU, so protect
// sections run pinned and must stay short. The main benefit over
// epoch-based reclamation is that retired memory is reclaimable
// immediately after a scan, without waiting for a grace period.
package hazptr
