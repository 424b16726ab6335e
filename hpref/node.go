package hpref

import "sync/atomic"

// Node carries the reference count and release callback for a
// reclaimable object. Embed it in the caller's type and expose it
// through the Object interface:
//
//	type Config struct {
//		node hpref.Node
//		...
//	}
//
//	func (c *Config) HazardNode() *hpref.Node { return &c.node }
type Node struct {
	refs    atomic.Int64
	release atomic.Pointer[func()]
}

// Object is implemented by types embedding a Node.
type Object interface {
	HazardNode() *Node
}

// Init sets the count to 1 and binds the release callback. The
// callback runs exactly once, after the count reaches zero and the
// retirement scan completes.
func (n *Node) Init(release func()) {
	n.refs.Store(1)
	n.release.Store(&release)
}

// Ref takes an additional reference. The caller must already own one:
// incrementing through a shared location requires Promote instead.
func (n *Node) Ref() {
	if n.refs.Add(1) <= 1 {
		panic("hpref: Ref on a node with no live reference")
	}
}

// TryRef takes a reference unless the count already reached zero.
// Safe to call under an active hazard pointer protection: the node
// cannot be reclaimed mid-call, but it may already be draining.
func (n *Node) TryRef() bool {
	for {
		c := n.refs.Load()
		if c == 0 {
			return false
		}
		if n.refs.CompareAndSwap(c, c+1) {
			return true
		}
	}
}

// Refs returns the current count. Snapshot only, for diagnostics and
// tests.
func (n *Node) Refs() int64 {
	return n.refs.Load()
}

// reclaim invokes the release callback, consuming it.
func (n *Node) reclaim() {
	f := n.release.Swap(nil)
	if f == nil {
		panic("hpref: node released twice")
	}
	(*f)()
}
