// Package journal is the durable intent log of the registry: every
// update is framed, checksummed, and appended before it is applied
// in memory. Segments rotate by size and age; segments fully covered
// by a persisted snapshot can be truncated.
package journal

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	Dir             string
	SegmentSize     int64
	SegmentDuration time.Duration
}

type Journal struct {
	dir        string
	segSize    int64
	segAge     time.Duration
	current    *segment
	segIndex   int
	lastRotate time.Time
}

func Open(cfg Config) (*Journal, error) {
	if cfg.Dir == "" {
		cfg.Dir = "./journal_data"
	}
	if cfg.SegmentSize == 0 {
		cfg.SegmentSize = 2 * 1024 * 1024
	}
	if cfg.SegmentDuration == 0 {
		cfg.SegmentDuration = 5 * time.Minute
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	index := nextSegmentIndex(cfg.Dir)
	seg, err := openSegment(cfg.Dir, index)
	if err != nil {
		return nil, err
	}

	return &Journal{
		dir:        cfg.Dir,
		segSize:    cfg.SegmentSize,
		segAge:     cfg.SegmentDuration,
		current:    seg,
		segIndex:   index,
		lastRotate: time.Now(),
	}, nil
}

// Append frames and writes one record.
//
// Frame:
// [type:1][seq:8][time:8][klen:4][vlen:4][key][value][crc:4]
func (j *Journal) Append(r *Record) error {
	klen := uint32(len(r.Key))
	vlen := uint32(len(r.Value))

	buf := make([]byte, headerSize+klen+vlen+4)
	buf[0] = byte(r.Type)
	binary.BigEndian.PutUint64(buf[1:9], r.Seq)
	binary.BigEndian.PutUint64(buf[9:17], uint64(r.Time))
	binary.BigEndian.PutUint32(buf[17:21], klen)
	binary.BigEndian.PutUint32(buf[21:25], vlen)
	copy(buf[headerSize:], r.Key)
	copy(buf[headerSize+klen:], r.Value)

	crc := CRC32(buf[:headerSize+klen+vlen])
	binary.BigEndian.PutUint32(buf[headerSize+klen+vlen:], crc)

	if err := j.current.append(buf); err != nil {
		return err
	}

	if j.current.offset >= j.segSize || time.Since(j.lastRotate) >= j.segAge {
		return j.rotate()
	}
	return nil
}

func (j *Journal) Sync() error {
	return j.current.sync()
}

func (j *Journal) Close() error {
	return j.current.close()
}

func (j *Journal) rotate() error {
	_ = j.current.close()
	j.segIndex++

	seg, err := openSegment(j.dir, j.segIndex)
	if err != nil {
		return err
	}

	j.current = seg
	j.lastRotate = time.Now()
	return nil
}

// TruncateBefore removes segments whose every record is covered by
// seq. The current segment is never removed.
func (j *Journal) TruncateBefore(seq uint64) error {
	files, err := filepath.Glob(filepath.Join(j.dir, "segment-*.journal"))
	if err != nil {
		return err
	}

	for _, path := range files {
		if path == j.current.file.Name() {
			continue
		}
		maxSeq, err := maxSeqInSegment(path)
		if err != nil {
			continue
		}
		if maxSeq <= seq {
			_ = os.Remove(path)
		}
	}
	return nil
}

func nextSegmentIndex(dir string) int {
	files, err := filepath.Glob(filepath.Join(dir, "segment-*.journal"))
	if err != nil || len(files) == 0 {
		return 0
	}
	// segment names sort lexicographically
	last := filepath.Base(files[len(files)-1])
	var index int
	if _, err := fmt.Sscanf(last, "segment-%d.journal", &index); err != nil {
		return len(files)
	}
	return index + 1
}
