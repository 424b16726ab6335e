package sharedptr

import "testing"

func BenchmarkCloneDrop(b *testing.B) {
	sp := New(1, nil)
	defer sp.Drop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cp := sp.Clone()
		cp.Drop()
	}
}

func BenchmarkLoadDrop(b *testing.B) {
	sp := New(1, nil)
	var s SyncSharedPtr[int]
	s.MoveFrom(&sp)
	defer s.Drop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cp := s.Load()
		cp.Drop()
	}
}

func BenchmarkLoadDropParallel(b *testing.B) {
	sp := New(1, nil)
	var s SyncSharedPtr[int]
	s.MoveFrom(&sp)
	defer s.Drop()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			cp := s.Load()
			cp.Drop()
		}
	})
}
