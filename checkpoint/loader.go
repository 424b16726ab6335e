package checkpoint

import (
	"encoding/gob"
	"os"
	"path/filepath"
)

// Load reads the checkpoint under dir. A missing file is not an
// error; a fresh node simply replays the journal from the start.
func Load(dir string) (Checkpoint, error) {
	f, err := os.Open(filepath.Join(dir, "checkpoint.bin"))
	if err != nil {
		return Checkpoint{}, nil // checkpoint optional
	}
	defer f.Close()

	var c Checkpoint
	if err := gob.NewDecoder(f).Decode(&c); err != nil {
		return Checkpoint{}, err
	}
	return c, nil
}
