package sharedptr

import (
	"smr/hazptr"
	"smr/hpref"
)

// All sync slots in the process share one hazard domain, mirroring the
// one-slot-per-CPU budget: a goroutine runs at most one Load promotion
// at a time.
var domain = hazptr.New("sharedptr")

// Node is the refcounted box behind one or more shared pointers.
type Node[T any] struct {
	node  hpref.Node
	Value T
}

// HazardNode exposes the embedded counter.
func (n *Node[T]) HazardNode() *hpref.Node { return &n.node }

// SharedPtr owns one reference-count unit on a node. The zero value is
// empty. It is not safe to share a SharedPtr between goroutines; clone
// it, or transfer it through a SyncSharedPtr.
type SharedPtr[T any] struct {
	n *Node[T]
}

// New allocates a node around v with count 1. release runs exactly
// once when the last reference is dropped and the retirement scan has
// finished; nil means the node is simply left to the garbage
// collector.
func New[T any](v T, release func(*Node[T])) SharedPtr[T] {
	n := &Node[T]{Value: v}
	return Adopt(n, release)
}

// Adopt wraps an existing node (for example one recycled from a pool)
// with a fresh count of 1.
func Adopt[T any](n *Node[T], release func(*Node[T])) SharedPtr[T] {
	if release == nil {
		release = func(*Node[T]) {}
	}
	n.node.Init(func() { release(n) })
	return SharedPtr[T]{n: n}
}

// IsNil reports whether the pointer is empty.
func (sp SharedPtr[T]) IsNil() bool { return sp.n == nil }

// Get returns the pointed-to value, nil when empty. Valid until the
// owning SharedPtr is dropped.
func (sp SharedPtr[T]) Get() *T {
	if sp.n == nil {
		return nil
	}
	return &sp.n.Value
}

// Node returns the underlying node, nil when empty.
func (sp SharedPtr[T]) Node() *Node[T] { return sp.n }

// Clone returns a second owning value, incrementing the count. The two
// copies are dropped independently.
func (sp SharedPtr[T]) Clone() SharedPtr[T] {
	if sp.n != nil {
		sp.n.node.Ref()
	}
	return sp
}

// Drop releases the reference and empties sp. The drop that reaches
// zero waits out in-flight Load promotions, then runs the release
// callback. Dropping an empty pointer is a no-op.
func (sp *SharedPtr[T]) Drop() {
	n := sp.n
	if n == nil {
		return
	}
	sp.n = nil
	hpref.Unref(domain, n)
}
