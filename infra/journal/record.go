package journal

import "time"

// RecordType defines journal intent.
type RecordType uint8

const (
	RecordPut RecordType = iota
	RecordDelete
)

// Record is an immutable journal entry describing one registry update.
type Record struct {
	Type  RecordType
	Seq   uint64
	Time  int64
	Key   string
	Value []byte
}

func NewRecord(t RecordType, seq uint64, key string, value []byte) *Record {
	return &Record{
		Type:  t,
		Seq:   seq,
		Time:  time.Now().UnixNano(),
		Key:   key,
		Value: value,
	}
}
