package hazptr

import (
	"sync/atomic"
	"testing"
	"unsafe"

	"smr/internal/cpu"
)

func BenchmarkTryProtectRelease(b *testing.B) {
	d := New("bench")
	v := 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := cpu.Pin()
		h, ok := TryProtect(d, id, &v)
		if !ok {
			cpu.Unpin()
			b.Fatal("protect failed")
		}
		h.Release()
		cpu.Unpin()
	}
}

func BenchmarkLoadTryProtect(b *testing.B) {
	d := New("bench")
	v := 1
	var src atomic.Pointer[int]
	src.Store(&v)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := cpu.Pin()
		_, h, ok := LoadTryProtect(d, id, &src)
		if !ok {
			cpu.Unpin()
			b.Fatal("acquisition failed")
		}
		h.Release()
		cpu.Unpin()
	}
}

func BenchmarkLoadTryProtectParallel(b *testing.B) {
	d := New("bench")
	v := 1
	var src atomic.Pointer[int]
	src.Store(&v)

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			id := cpu.Pin()
			_, h, ok := LoadTryProtect(d, id, &src)
			if ok {
				h.Release()
			}
			cpu.Unpin()
		}
	})
}

func BenchmarkScanUncontended(b *testing.B) {
	d := New("bench")
	v := 1
	p := unsafe.Pointer(&v)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Scan(p, nil)
	}
}
