// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: infra/journal/journalpb/journal.proto

package journalpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// PBRecord is the wire form of a journal record, used for payloads
// that leave the process (outbox events, broadcasts).
type PBRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          uint32                 `protobuf:"varint,1,opt,name=type,proto3" json:"type,omitempty"`
	Seq           uint64                 `protobuf:"varint,2,opt,name=seq,proto3" json:"seq,omitempty"`
	Time          int64                  `protobuf:"varint,3,opt,name=time,proto3" json:"time,omitempty"`
	Key           string                 `protobuf:"bytes,4,opt,name=key,proto3" json:"key,omitempty"`
	Value         []byte                 `protobuf:"bytes,5,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PBRecord) Reset() {
	*x = PBRecord{}
	mi := &file_infra_journal_journalpb_journal_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PBRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PBRecord) ProtoMessage() {}

func (x *PBRecord) ProtoReflect() protoreflect.Message {
	mi := &file_infra_journal_journalpb_journal_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PBRecord.ProtoReflect.Descriptor instead.
func (*PBRecord) Descriptor() ([]byte, []int) {
	return file_infra_journal_journalpb_journal_proto_rawDescGZIP(), []int{0}
}

func (x *PBRecord) GetType() uint32 {
	if x != nil {
		return x.Type
	}
	return 0
}

func (x *PBRecord) GetSeq() uint64 {
	if x != nil {
		return x.Seq
	}
	return 0
}

func (x *PBRecord) GetTime() int64 {
	if x != nil {
		return x.Time
	}
	return 0
}

func (x *PBRecord) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *PBRecord) GetValue() []byte {
	if x != nil {
		return x.Value
	}
	return nil
}

var File_infra_journal_journalpb_journal_proto protoreflect.FileDescriptor

const file_infra_journal_journalpb_journal_proto_rawDesc = "" +
	"\n" +
	"%infra/journal/journalpb/journal.proto\x12\tjournalpb\"l\n" +
	"\bPBRecord\x12\x12\n" +
	"\x04type\x18\x01 \x01(\rR\x04type\x12\x10\n" +
	"\x03seq\x18\x02 \x01(\x04R\x03seq\x12\x12\n" +
	"\x04time\x18\x03 \x01(\x03R\x04time\x12\x10\n" +
	"\x03key\x18\x04 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x05 \x01(\fR\x05valueB\x1dZ\x1bsmr/infra/journal/journalpbb\x06proto3"

var (
	file_infra_journal_journalpb_journal_proto_rawDescOnce sync.Once
	file_infra_journal_journalpb_journal_proto_rawDescData []byte
)

func file_infra_journal_journalpb_journal_proto_rawDescGZIP() []byte {
	file_infra_journal_journalpb_journal_proto_rawDescOnce.Do(func() {
		file_infra_journal_journalpb_journal_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_infra_journal_journalpb_journal_proto_rawDesc), len(file_infra_journal_journalpb_journal_proto_rawDesc)))
	})
	return file_infra_journal_journalpb_journal_proto_rawDescData
}

var file_infra_journal_journalpb_journal_proto_msgTypes = make([]protoimpl.MessageInfo, 1)
var file_infra_journal_journalpb_journal_proto_goTypes = []any{
	(*PBRecord)(nil), // 0: journalpb.PBRecord
}
var file_infra_journal_journalpb_journal_proto_depIdxs = []int32{
	0, // [0:0] is the sub-list for method output_type
	0, // [0:0] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_infra_journal_journalpb_journal_proto_init() }
func file_infra_journal_journalpb_journal_proto_init() {
	if File_infra_journal_journalpb_journal_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_infra_journal_journalpb_journal_proto_rawDesc), len(file_infra_journal_journalpb_journal_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   1,
			NumExtensions: 0,
			NumServices:   0,
		},
		GoTypes:           file_infra_journal_journalpb_journal_proto_goTypes,
		DependencyIndexes: file_infra_journal_journalpb_journal_proto_depIdxs,
		MessageInfos:      file_infra_journal_journalpb_journal_proto_msgTypes,
	}.Build()
	File_infra_journal_journalpb_journal_proto = out.File
	file_infra_journal_journalpb_journal_proto_goTypes = nil
	file_infra_journal_journalpb_journal_proto_depIdxs = nil
}
