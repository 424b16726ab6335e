package checkpoint

import (
	"testing"

	"smr/domain/registry"
)

func TestWriteLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: dir}

	entries := []registry.Entry{
		{Key: "a", Value: []byte("1")},
		{Key: "b", Value: []byte("2")},
	}
	if err := w.Write(7, entries); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Seq != 7 {
		t.Fatalf("seq = %d, want 7", c.Seq)
	}
	if len(c.Entries) != 2 || c.Entries[0].Key != "a" || string(c.Entries[1].Value) != "2" {
		t.Fatalf("entries = %+v", c.Entries)
	}
}

func TestLoadMissingIsEmpty(t *testing.T) {
	c, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Seq != 0 || c.Entries != nil {
		t.Fatalf("expected empty checkpoint, got %+v", c)
	}
}

func TestWriteOverwritesPrevious(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: dir}

	if err := w.Write(1, []registry.Entry{{Key: "x"}}); err != nil {
		t.Fatal(err)
	}
	if err := w.Write(2, nil); err != nil {
		t.Fatal(err)
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if c.Seq != 2 || len(c.Entries) != 0 {
		t.Fatalf("stale checkpoint survived: %+v", c)
	}
}
