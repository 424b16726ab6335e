package checkpoint

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"smr/domain/registry"
)

type Writer struct {
	Dir string
}

// Write persists one full checkpoint atomically: the file is
// written to a temp name and renamed over the previous checkpoint.
func (w *Writer) Write(seq uint64, entries []registry.Entry) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(w.Dir, "checkpoint.bin")
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	c := Checkpoint{
		Seq:     seq,
		Created: time.Now(),
		Entries: entries,
	}
	if err := gob.NewEncoder(f).Encode(&c); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
