package journal

//go:generate protoc --go_out=paths=source_relative:. journalpb/journal.proto

import (
	"google.golang.org/protobuf/proto"

	"smr/infra/journal/journalpb"
)

// ProtoSerializer converts records to their protobuf wire form, for
// payloads that cross process boundaries. The on-disk journal keeps
// its own CRC framing; this is for outbox events and broadcasts.
type ProtoSerializer struct{}

func (ProtoSerializer) Encode(rec *Record) ([]byte, error) {
	p := &journalpb.PBRecord{
		Type:  uint32(rec.Type),
		Seq:   rec.Seq,
		Time:  rec.Time,
		Key:   rec.Key,
		Value: rec.Value,
	}
	return proto.Marshal(p)
}

func (ProtoSerializer) Decode(data []byte) (*Record, error) {
	var p journalpb.PBRecord
	if err := proto.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &Record{
		Type:  RecordType(p.Type),
		Seq:   p.Seq,
		Time:  p.Time,
		Key:   p.Key,
		Value: p.Value,
	}, nil
}
