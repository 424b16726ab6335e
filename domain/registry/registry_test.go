package registry

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"smr/sharedptr"
)

func snap(seq uint64, kv ...string) sharedptr.SharedPtr[Snapshot] {
	s := Snapshot{Seq: seq, Created: time.Now()}
	for i := 0; i+1 < len(kv); i += 2 {
		s.Entries = append(s.Entries, Entry{Key: kv[i], Value: []byte(kv[i+1])})
	}
	return sharedptr.New(s, nil)
}

func TestPublishAndCurrent(t *testing.T) {
	r := New()
	defer r.Close()

	if cur := r.Current(); !cur.IsNil() {
		t.Fatal("fresh registry should be empty")
	}

	r.Publish(snap(1, "a", "1"))
	cur := r.Current()
	if cur.IsNil() {
		t.Fatal("current is empty after publish")
	}
	defer cur.Drop()

	if cur.Get().Seq != 1 {
		t.Fatalf("seq = %d, want 1", cur.Get().Seq)
	}
	v, ok := cur.Get().Lookup("a")
	if !ok || string(v) != "1" {
		t.Fatalf("lookup a = %q ok=%v", v, ok)
	}
	if _, ok := cur.Get().Lookup("missing"); ok {
		t.Fatal("lookup of a missing key succeeded")
	}
	if r.LastSeq.Load() != 1 {
		t.Fatalf("LastSeq = %d, want 1", r.LastSeq.Load())
	}
}

func TestPublishRetiresPrevious(t *testing.T) {
	r := New()
	defer r.Close()

	released := 0
	first := sharedptr.New(Snapshot{Seq: 1}, func(*sharedptr.Node[Snapshot]) {
		released++
	})
	r.Publish(first)
	r.Publish(snap(2))

	if released != 1 {
		t.Fatalf("previous snapshot released %d times, want 1", released)
	}
}

func TestReaderHoldsRetiredSnapshot(t *testing.T) {
	r := New()
	defer r.Close()

	var released atomic.Int64
	first := sharedptr.New(Snapshot{Seq: 1}, func(*sharedptr.Node[Snapshot]) {
		released.Add(1)
	})
	r.Publish(first)

	cur := r.Current()
	r.Publish(snap(2))

	if released.Load() != 0 {
		t.Fatal("snapshot released while a reader held it")
	}
	if cur.Get().Seq != 1 {
		t.Fatalf("reader's snapshot changed: seq=%d", cur.Get().Seq)
	}
	cur.Drop()
	if released.Load() != 1 {
		t.Fatalf("release ran %d times after the reader dropped", released.Load())
	}
}

func TestConcurrentReadersSeeConsistentSnapshots(t *testing.T) {
	r := New()

	var stop atomic.Bool
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var last uint64
			for !stop.Load() {
				cur := r.Current()
				if cur.IsNil() {
					continue
				}
				s := cur.Get()
				// a snapshot's own contents must match its seq
				want := fmt.Sprintf("v%d", s.Seq)
				if v, ok := s.Lookup("gen"); !ok || string(v) != want {
					t.Errorf("seq %d carries value %q", s.Seq, v)
					cur.Drop()
					return
				}
				if s.Seq < last {
					t.Errorf("seq went backwards: %d < %d", s.Seq, last)
					cur.Drop()
					return
				}
				last = s.Seq
				cur.Drop()
			}
		}()
	}

	for seq := uint64(1); seq <= 2000; seq++ {
		r.Publish(snap(seq, "gen", fmt.Sprintf("v%d", seq)))
	}
	stop.Store(true)
	wg.Wait()
	r.Close()
}
