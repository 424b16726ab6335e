package service

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"smr/domain/registry"
	"smr/infra/journal"
	"smr/infra/memory"
	"smr/infra/outbox"
	"smr/infra/sequence"
)

func newTestService(t *testing.T) *RegistryService {
	t.Helper()

	jnl, err := journal.Open(journal.Config{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { jnl.Close() })

	ob, err := outbox.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	t.Cleanup(func() { ob.Close() })

	pool := memory.NewPool(func() *SnapshotNode { return &SnapshotNode{} })
	svc := NewRegistryService(registry.New(), pool, sequence.New(0), jnl, ob)
	t.Cleanup(svc.Close)
	return svc
}

func TestPutGetDelete(t *testing.T) {
	svc := newTestService(t)

	seq, err := svc.Put("a", []byte("1"))
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if seq != 1 {
		t.Fatalf("seq = %d, want 1", seq)
	}

	v, ok := svc.Get("a")
	if !ok || string(v) != "1" {
		t.Fatalf("get a = %q ok=%v", v, ok)
	}

	if _, err := svc.Delete("a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := svc.Get("a"); ok {
		t.Fatal("key survived delete")
	}
}

func TestSnapshotIsSortedAndConsistent(t *testing.T) {
	svc := newTestService(t)

	for _, k := range []string{"c", "a", "b"} {
		if _, err := svc.Put(k, []byte(k)); err != nil {
			t.Fatalf("put %s: %v", k, err)
		}
	}

	seq, entries := svc.Snapshot()
	if seq != 3 {
		t.Fatalf("seq = %d, want 3", seq)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	for i, want := range []string{"a", "b", "c"} {
		if entries[i].Key != want {
			t.Fatalf("entries not sorted: %v", entries)
		}
	}
}

func TestOutboxReceivesEvents(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Put("k", []byte("v")); err != nil {
		t.Fatal(err)
	}

	rec, err := svc.ob.Get(1)
	if err != nil {
		t.Fatalf("outbox get: %v", err)
	}
	dec, err := journal.ProtoSerializer{}.Decode(rec.Payload)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if dec.Key != "k" || string(dec.Value) != "v" || dec.Seq != 1 {
		t.Fatalf("unexpected event: %+v", dec)
	}
}

func TestEventFailureIsLogged(t *testing.T) {
	svc := newTestService(t)

	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	// proto3 string fields reject invalid UTF-8, so this key cannot
	// be encoded into an outbox event
	if _, err := svc.Put("bad-\xff-key", []byte("v")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if !strings.Contains(buf.String(), "[service] encode event seq=1") {
		t.Fatalf("event failure not logged: %q", buf.String())
	}

	// the write itself is journaled and applied regardless
	if _, ok := svc.Get("bad-\xff-key"); !ok {
		t.Fatal("write lost alongside the event")
	}
}

func TestReplayRebuildsState(t *testing.T) {
	jnlDir := t.TempDir()

	jnl, err := journal.Open(journal.Config{Dir: jnlDir})
	if err != nil {
		t.Fatal(err)
	}
	ob, err := outbox.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer ob.Close()

	pool := memory.NewPool(func() *SnapshotNode { return &SnapshotNode{} })
	svc := NewRegistryService(registry.New(), pool, sequence.New(0), jnl, ob)

	_, _ = svc.Put("a", []byte("1"))
	_, _ = svc.Put("b", []byte("2"))
	_, _ = svc.Delete("a")
	svc.Close()
	_ = jnl.Close()

	// restart
	jnl2, err := journal.Open(journal.Config{Dir: jnlDir})
	if err != nil {
		t.Fatal(err)
	}
	defer jnl2.Close()
	svc2 := NewRegistryService(registry.New(), pool, sequence.New(0), jnl2, ob)
	defer svc2.Close()

	if err := svc2.ReplayFromJournal(jnlDir); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if _, ok := svc2.Get("a"); ok {
		t.Fatal("deleted key resurrected by replay")
	}
	v, ok := svc2.Get("b")
	if !ok || string(v) != "2" {
		t.Fatalf("get b after replay = %q ok=%v", v, ok)
	}
	if svc2.seqGen.Current() != 3 {
		t.Fatalf("sequencer = %d after replay, want 3", svc2.seqGen.Current())
	}
	// new writes continue the sequence
	seq, _ := svc2.Put("c", []byte("3"))
	if seq != 4 {
		t.Fatalf("post-replay seq = %d, want 4", seq)
	}
}

// Concurrent gRPC handlers call Put directly; the service must
// serialize them so the registry's single-writer publish never sees
// two writers at once.
func TestConcurrentPutsAreSerialized(t *testing.T) {
	svc := newTestService(t)

	const writers = 8
	const perWriter = 200

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				key := fmt.Sprintf("w%d-%d", w, i)
				if _, err := svc.Put(key, []byte("v")); err != nil {
					t.Errorf("put %s: %v", key, err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	seq, entries := svc.Snapshot()
	if seq != writers*perWriter {
		t.Fatalf("seq = %d, want %d", seq, writers*perWriter)
	}
	if len(entries) != writers*perWriter {
		t.Fatalf("entries = %d, want %d", len(entries), writers*perWriter)
	}
}

func TestConcurrentReadersDuringWrites(t *testing.T) {
	svc := newTestService(t)

	var stop atomic.Bool
	var wg sync.WaitGroup
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for !stop.Load() {
				seq, entries := svc.Snapshot()
				// entries must be internally consistent with seq:
				// the writer publishes key "gen" = seq
				for _, e := range entries {
					if e.Key == "gen" && string(e.Value) != fmt.Sprintf("%d", seq) {
						t.Errorf("snapshot seq %d carries gen %q", seq, e.Value)
						return
					}
				}
			}
		}()
	}

	for i := 0; i < 500; i++ {
		seq := svc.seqGen.Current() + 1
		if _, err := svc.Put("gen", []byte(fmt.Sprintf("%d", seq))); err != nil {
			t.Fatalf("put: %v", err)
		}
	}
	stop.Store(true)
	wg.Wait()
}
