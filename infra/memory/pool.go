// Package memory provides object reuse for reclaimed snapshot nodes.
// Hazard-pointer release callbacks return nodes here instead of
// leaving them to the garbage collector, keeping the publish path
// allocation-free in steady state.
package memory

import "sync"

// Pool is a typed object pool.
type Pool[T any] struct {
	p *sync.Pool
}

func NewPool[T any](ctor func() *T) *Pool[T] {
	return &Pool[T]{
		p: &sync.Pool{
			New: func() any { return ctor() },
		},
	}
}

func (p *Pool[T]) Get() *T {
	return p.p.Get().(*T)
}

func (p *Pool[T]) Put(v *T) {
	p.p.Put(v)
}
