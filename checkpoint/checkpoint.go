package checkpoint

import (
	"time"

	"smr/domain/registry"
)

type Checkpoint struct {
	Seq     uint64
	Created time.Time
	Entries []registry.Entry
}
