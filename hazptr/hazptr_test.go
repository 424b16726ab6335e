package hazptr

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
	"unsafe"

	"smr/internal/cpu"
)

func TestTryProtectAndRelease(t *testing.T) {
	d := New("test")
	v := 42

	id := cpu.Pin()
	h, ok := TryProtect(d, id, &v)
	cpu.Unpin()
	if !ok {
		t.Fatal("protect failed on an empty slot")
	}
	if !d.Protected(id) {
		t.Error("slot should be occupied while the handle is held")
	}
	h.Release()
	if d.Protected(id) {
		t.Error("slot should be empty after release")
	}
}

func TestTryProtectNil(t *testing.T) {
	d := New("test")

	id := cpu.Pin()
	defer cpu.Unpin()
	if _, ok := TryProtect[int](d, id, nil); ok {
		t.Fatal("expected protect of nil to fail")
	}
	if d.Protected(id) {
		t.Error("nil protect must not consume the slot")
	}
}

func TestTryProtectReentrancyRejected(t *testing.T) {
	d := New("test")
	a, b := 1, 2

	id := cpu.Pin()
	defer cpu.Unpin()
	h, ok := TryProtect(d, id, &a)
	if !ok {
		t.Fatal("first protect failed")
	}
	if _, ok := TryProtect(d, id, &b); ok {
		t.Fatal("second protect on the same CPU must fail, not overwrite")
	}
	// the slot still holds the first address
	if h.Addr() == nil || !d.Protected(id) {
		t.Fatal("first protection lost")
	}
	h.Release()
}

func TestLoadTryProtectNilSource(t *testing.T) {
	d := New("test")
	var src atomic.Pointer[int]

	id := cpu.Pin()
	defer cpu.Unpin()
	if _, _, ok := LoadTryProtect(d, id, &src); ok {
		t.Fatal("expected not-ok for a nil source")
	}
	if d.Protected(id) {
		t.Error("slot must be empty after a failed acquisition")
	}
}

func TestLoadTryProtectReturnsPublished(t *testing.T) {
	d := New("test")
	v := 7
	var src atomic.Pointer[int]
	src.Store(&v)

	id := cpu.Pin()
	p, h, ok := LoadTryProtect(d, id, &src)
	cpu.Unpin()
	if !ok || p != &v {
		t.Fatalf("expected to protect %p, got %p ok=%v", &v, p, ok)
	}
	h.Release()
}

func TestScanReturnsWhenAddressUnprotected(t *testing.T) {
	d := New("test")
	v := 1

	done := make(chan struct{})
	go func() {
		d.Scan(ptr(&v), nil)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scan blocked although nothing protects the address")
	}
}

func TestScanWaitsForRelease(t *testing.T) {
	d := New("test")
	v := 1

	id := cpu.Pin()
	h, ok := TryProtect(d, id, &v)
	cpu.Unpin()
	if !ok {
		t.Fatal("protect failed")
	}

	var scanDone atomic.Bool
	go func() {
		d.Scan(ptr(&v), nil)
		scanDone.Store(true)
	}()

	time.Sleep(50 * time.Millisecond)
	if scanDone.Load() {
		t.Fatal("scan returned while the address was still protected")
	}

	h.Release()
	deadline := time.Now().Add(2 * time.Second)
	for !scanDone.Load() {
		if time.Now().After(deadline) {
			t.Fatal("scan did not return after release")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestScanCallbackDoesNotBlock(t *testing.T) {
	d := New("test")
	v := 1

	id := cpu.Pin()
	h, ok := TryProtect(d, id, &v)
	cpu.Unpin()
	if !ok {
		t.Fatal("protect failed")
	}

	var matches []int
	d.Scan(ptr(&v), func(cpu int, s *Slot) {
		matches = append(matches, cpu)
	})
	if len(matches) != 1 || matches[0] != id {
		t.Fatalf("expected one match on cpu %d, got %v", id, matches)
	}
	h.Release()
}

func TestDomainsAreIndependent(t *testing.T) {
	d1 := New("one")
	d2 := New("two")
	v := 1

	id := cpu.Pin()
	h, ok := TryProtect(d1, id, &v)
	cpu.Unpin()
	if !ok {
		t.Fatal("protect failed")
	}
	// a scan of another domain must not see the protection
	done := make(chan struct{})
	go func() {
		d2.Scan(ptr(&v), nil)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scan of an independent domain blocked")
	}
	h.Release()
}

// retireObj is retired and "freed" by flipping a flag; readers assert
// they never hold a freed object.
type retireObj struct {
	freed atomic.Bool
	gen   uint64
}

func TestProtectedLoadNeverObservesFreed(t *testing.T) {
	d := New("test")
	var src atomic.Pointer[retireObj]
	src.Store(&retireObj{})

	var stop atomic.Bool
	var wg sync.WaitGroup

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for !stop.Load() {
				id := cpu.Pin()
				p, h, ok := LoadTryProtect(d, id, &src)
				if ok {
					if p.freed.Load() {
						t.Error("protected a freed object")
						h.Release()
						cpu.Unpin()
						return
					}
					h.Release()
				}
				cpu.Unpin()
			}
		}()
	}

	// single retirer: unpublish, scan, then free
	for g := uint64(1); g < 2000; g++ {
		next := &retireObj{gen: g}
		old := src.Swap(next) // Store A
		d.Scan(ptr(old), nil)
		old.freed.Store(true)
	}
	stop.Store(true)
	wg.Wait()
}

func ptr[T any](p *T) unsafe.Pointer { return unsafe.Pointer(p) }
