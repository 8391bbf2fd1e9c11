// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: preferences/v1/preferences.proto

package prefsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type PreferencesRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId  string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FromUtc int64  `protobuf:"varint,2,opt,name=from_utc,json=fromUtc,proto3" json:"from_utc,omitempty"`
	ToUtc   int64  `protobuf:"varint,3,opt,name=to_utc,json=toUtc,proto3" json:"to_utc,omitempty"`
}

func (x *PreferencesRequest) Reset() {
	*x = PreferencesRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_preferences_v1_preferences_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PreferencesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreferencesRequest) ProtoMessage() {}

func (x *PreferencesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_preferences_v1_preferences_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreferencesRequest.ProtoReflect.Descriptor instead.
func (*PreferencesRequest) Descriptor() ([]byte, []int) {
	return file_preferences_v1_preferences_proto_rawDescGZIP(), []int{0}
}

func (x *PreferencesRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *PreferencesRequest) GetFromUtc() int64 {
	if x != nil {
		return x.FromUtc
	}
	return 0
}

func (x *PreferencesRequest) GetToUtc() int64 {
	if x != nil {
		return x.ToUtc
	}
	return 0
}

type PreferredRange struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	StartUtc int64 `protobuf:"varint,1,opt,name=start_utc,json=startUtc,proto3" json:"start_utc,omitempty"`
	EndUtc   int64 `protobuf:"varint,2,opt,name=end_utc,json=endUtc,proto3" json:"end_utc,omitempty"`
}

func (x *PreferredRange) Reset() {
	*x = PreferredRange{}
	if protoimpl.UnsafeEnabled {
		mi := &file_preferences_v1_preferences_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PreferredRange) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreferredRange) ProtoMessage() {}

func (x *PreferredRange) ProtoReflect() protoreflect.Message {
	mi := &file_preferences_v1_preferences_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreferredRange.ProtoReflect.Descriptor instead.
func (*PreferredRange) Descriptor() ([]byte, []int) {
	return file_preferences_v1_preferences_proto_rawDescGZIP(), []int{1}
}

func (x *PreferredRange) GetStartUtc() int64 {
	if x != nil {
		return x.StartUtc
	}
	return 0
}

func (x *PreferredRange) GetEndUtc() int64 {
	if x != nil {
		return x.EndUtc
	}
	return 0
}

type PreferencesResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId              string            `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Timezone            string            `protobuf:"bytes,2,opt,name=timezone,proto3" json:"timezone,omitempty"`
	SlotDurationMinutes int32             `protobuf:"varint,3,opt,name=slot_duration_minutes,json=slotDurationMinutes,proto3" json:"slot_duration_minutes,omitempty"`
	WorkDays            []int32           `protobuf:"varint,4,rep,packed,name=work_days,json=workDays,proto3" json:"work_days,omitempty"`
	WorkStartMinute     int32             `protobuf:"varint,5,opt,name=work_start_minute,json=workStartMinute,proto3" json:"work_start_minute,omitempty"`
	WorkEndMinute       int32             `protobuf:"varint,6,opt,name=work_end_minute,json=workEndMinute,proto3" json:"work_end_minute,omitempty"`
	BufferBeforeMinutes int32             `protobuf:"varint,7,opt,name=buffer_before_minutes,json=bufferBeforeMinutes,proto3" json:"buffer_before_minutes,omitempty"`
	BufferAfterMinutes  int32             `protobuf:"varint,8,opt,name=buffer_after_minutes,json=bufferAfterMinutes,proto3" json:"buffer_after_minutes,omitempty"`
	PreferredRanges     []*PreferredRange `protobuf:"bytes,9,rep,name=preferred_ranges,json=preferredRanges,proto3" json:"preferred_ranges,omitempty"`
}

func (x *PreferencesResponse) Reset() {
	*x = PreferencesResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_preferences_v1_preferences_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PreferencesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreferencesResponse) ProtoMessage() {}

func (x *PreferencesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_preferences_v1_preferences_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreferencesResponse.ProtoReflect.Descriptor instead.
func (*PreferencesResponse) Descriptor() ([]byte, []int) {
	return file_preferences_v1_preferences_proto_rawDescGZIP(), []int{2}
}

func (x *PreferencesResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *PreferencesResponse) GetTimezone() string {
	if x != nil {
		return x.Timezone
	}
	return ""
}

func (x *PreferencesResponse) GetSlotDurationMinutes() int32 {
	if x != nil {
		return x.SlotDurationMinutes
	}
	return 0
}

func (x *PreferencesResponse) GetWorkDays() []int32 {
	if x != nil {
		return x.WorkDays
	}
	return nil
}

func (x *PreferencesResponse) GetWorkStartMinute() int32 {
	if x != nil {
		return x.WorkStartMinute
	}
	return 0
}

func (x *PreferencesResponse) GetWorkEndMinute() int32 {
	if x != nil {
		return x.WorkEndMinute
	}
	return 0
}

func (x *PreferencesResponse) GetBufferBeforeMinutes() int32 {
	if x != nil {
		return x.BufferBeforeMinutes
	}
	return 0
}

func (x *PreferencesResponse) GetBufferAfterMinutes() int32 {
	if x != nil {
		return x.BufferAfterMinutes
	}
	return 0
}

func (x *PreferencesResponse) GetPreferredRanges() []*PreferredRange {
	if x != nil {
		return x.PreferredRanges
	}
	return nil
}

var File_preferences_v1_preferences_proto protoreflect.FileDescriptor

var file_preferences_v1_preferences_proto_rawDesc = []byte{
	0x0a, 0x20, 0x70, 0x72, 0x65, 0x66, 0x65, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x73, 0x2f, 0x76, 0x31,
	0x2f, 0x70, 0x72, 0x65, 0x66, 0x65, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x73, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x12, 0x0e, 0x70, 0x72, 0x65, 0x66, 0x65, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x73, 0x2e,
	0x76, 0x31, 0x22, 0x5f, 0x0a, 0x12, 0x50, 0x72, 0x65, 0x66, 0x65, 0x72, 0x65, 0x6e, 0x63, 0x65,
	0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73, 0x65, 0x72,
	0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x73, 0x65, 0x72, 0x49,
	0x64, 0x12, 0x19, 0x0a, 0x08, 0x66, 0x72, 0x6f, 0x6d, 0x5f, 0x75, 0x74, 0x63, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x07, 0x66, 0x72, 0x6f, 0x6d, 0x55, 0x74, 0x63, 0x12, 0x15, 0x0a, 0x06,
	0x74, 0x6f, 0x5f, 0x75, 0x74, 0x63, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x05, 0x74, 0x6f,
	0x55, 0x74, 0x63, 0x22, 0x46, 0x0a, 0x0e, 0x50, 0x72, 0x65, 0x66, 0x65, 0x72, 0x72, 0x65, 0x64,
	0x52, 0x61, 0x6e, 0x67, 0x65, 0x12, 0x1b, 0x0a, 0x09, 0x73, 0x74, 0x61, 0x72, 0x74, 0x5f, 0x75,
	0x74, 0x63, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x08, 0x73, 0x74, 0x61, 0x72, 0x74, 0x55,
	0x74, 0x63, 0x12, 0x17, 0x0a, 0x07, 0x65, 0x6e, 0x64, 0x5f, 0x75, 0x74, 0x63, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x06, 0x65, 0x6e, 0x64, 0x55, 0x74, 0x63, 0x22, 0xa0, 0x03, 0x0a, 0x13,
	0x50, 0x72, 0x65, 0x66, 0x65, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x73, 0x65, 0x72, 0x49, 0x64, 0x12, 0x1a, 0x0a, 0x08,
	0x74, 0x69, 0x6d, 0x65, 0x7a, 0x6f, 0x6e, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08,
	0x74, 0x69, 0x6d, 0x65, 0x7a, 0x6f, 0x6e, 0x65, 0x12, 0x32, 0x0a, 0x15, 0x73, 0x6c, 0x6f, 0x74,
	0x5f, 0x64, 0x75, 0x72, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x6d, 0x69, 0x6e, 0x75, 0x74, 0x65,
	0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x05, 0x52, 0x13, 0x73, 0x6c, 0x6f, 0x74, 0x44, 0x75, 0x72,
	0x61, 0x74, 0x69, 0x6f, 0x6e, 0x4d, 0x69, 0x6e, 0x75, 0x74, 0x65, 0x73, 0x12, 0x1b, 0x0a, 0x09,
	0x77, 0x6f, 0x72, 0x6b, 0x5f, 0x64, 0x61, 0x79, 0x73, 0x18, 0x04, 0x20, 0x03, 0x28, 0x05, 0x52,
	0x08, 0x77, 0x6f, 0x72, 0x6b, 0x44, 0x61, 0x79, 0x73, 0x12, 0x2a, 0x0a, 0x11, 0x77, 0x6f, 0x72,
	0x6b, 0x5f, 0x73, 0x74, 0x61, 0x72, 0x74, 0x5f, 0x6d, 0x69, 0x6e, 0x75, 0x74, 0x65, 0x18, 0x05,
	0x20, 0x01, 0x28, 0x05, 0x52, 0x0f, 0x77, 0x6f, 0x72, 0x6b, 0x53, 0x74, 0x61, 0x72, 0x74, 0x4d,
	0x69, 0x6e, 0x75, 0x74, 0x65, 0x12, 0x26, 0x0a, 0x0f, 0x77, 0x6f, 0x72, 0x6b, 0x5f, 0x65, 0x6e,
	0x64, 0x5f, 0x6d, 0x69, 0x6e, 0x75, 0x74, 0x65, 0x18, 0x06, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0d,
	0x77, 0x6f, 0x72, 0x6b, 0x45, 0x6e, 0x64, 0x4d, 0x69, 0x6e, 0x75, 0x74, 0x65, 0x12, 0x32, 0x0a,
	0x15, 0x62, 0x75, 0x66, 0x66, 0x65, 0x72, 0x5f, 0x62, 0x65, 0x66, 0x6f, 0x72, 0x65, 0x5f, 0x6d,
	0x69, 0x6e, 0x75, 0x74, 0x65, 0x73, 0x18, 0x07, 0x20, 0x01, 0x28, 0x05, 0x52, 0x13, 0x62, 0x75,
	0x66, 0x66, 0x65, 0x72, 0x42, 0x65, 0x66, 0x6f, 0x72, 0x65, 0x4d, 0x69, 0x6e, 0x75, 0x74, 0x65,
	0x73, 0x12, 0x30, 0x0a, 0x14, 0x62, 0x75, 0x66, 0x66, 0x65, 0x72, 0x5f, 0x61, 0x66, 0x74, 0x65,
	0x72, 0x5f, 0x6d, 0x69, 0x6e, 0x75, 0x74, 0x65, 0x73, 0x18, 0x08, 0x20, 0x01, 0x28, 0x05, 0x52,
	0x12, 0x62, 0x75, 0x66, 0x66, 0x65, 0x72, 0x41, 0x66, 0x74, 0x65, 0x72, 0x4d, 0x69, 0x6e, 0x75,
	0x74, 0x65, 0x73, 0x12, 0x49, 0x0a, 0x10, 0x70, 0x72, 0x65, 0x66, 0x65, 0x72, 0x72, 0x65, 0x64,
	0x5f, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x73, 0x18, 0x09, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x1e, 0x2e,
	0x70, 0x72, 0x65, 0x66, 0x65, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x50,
	0x72, 0x65, 0x66, 0x65, 0x72, 0x72, 0x65, 0x64, 0x52, 0x61, 0x6e, 0x67, 0x65, 0x52, 0x0f, 0x70,
	0x72, 0x65, 0x66, 0x65, 0x72, 0x72, 0x65, 0x64, 0x52, 0x61, 0x6e, 0x67, 0x65, 0x73, 0x32, 0x6e,
	0x0a, 0x11, 0x50, 0x72, 0x65, 0x66, 0x65, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x53, 0x65, 0x72, 0x76,
	0x69, 0x63, 0x65, 0x12, 0x59, 0x0a, 0x0e, 0x47, 0x65, 0x74, 0x50, 0x72, 0x65, 0x66, 0x65, 0x72,
	0x65, 0x6e, 0x63, 0x65, 0x73, 0x12, 0x22, 0x2e, 0x70, 0x72, 0x65, 0x66, 0x65, 0x72, 0x65, 0x6e,
	0x63, 0x65, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x72, 0x65, 0x66, 0x65, 0x72, 0x65, 0x6e, 0x63,
	0x65, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x23, 0x2e, 0x70, 0x72, 0x65, 0x66,
	0x65, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x72, 0x65, 0x66, 0x65,
	0x72, 0x65, 0x6e, 0x63, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x45,
	0x5a, 0x43, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x74, 0x61, 0x68,
	0x6d, 0x69, 0x64, 0x2d, 0x72, 0x61, 0x68, 0x6d, 0x61, 0x6e, 0x2f, 0x73, 0x6c, 0x6f, 0x74, 0x6d,
	0x69, 0x6e, 0x64, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x73, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x70,
	0x72, 0x65, 0x66, 0x65, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x73, 0x2f, 0x76, 0x31, 0x3b, 0x70, 0x72,
	0x65, 0x66, 0x73, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_preferences_v1_preferences_proto_rawDescOnce sync.Once
	file_preferences_v1_preferences_proto_rawDescData = file_preferences_v1_preferences_proto_rawDesc
)

func file_preferences_v1_preferences_proto_rawDescGZIP() []byte {
	file_preferences_v1_preferences_proto_rawDescOnce.Do(func() {
		file_preferences_v1_preferences_proto_rawDescData = protoimpl.X.CompressGZIP(file_preferences_v1_preferences_proto_rawDescData)
	})
	return file_preferences_v1_preferences_proto_rawDescData
}

var file_preferences_v1_preferences_proto_msgTypes = make([]protoimpl.MessageInfo, 3)
var file_preferences_v1_preferences_proto_goTypes = []any{
	(*PreferencesRequest)(nil),  // 0: preferences.v1.PreferencesRequest
	(*PreferredRange)(nil),      // 1: preferences.v1.PreferredRange
	(*PreferencesResponse)(nil), // 2: preferences.v1.PreferencesResponse
}
var file_preferences_v1_preferences_proto_depIdxs = []int32{
	1, // 0: preferences.v1.PreferencesResponse.preferred_ranges:type_name -> preferences.v1.PreferredRange
	0, // 1: preferences.v1.PreferenceService.GetPreferences:input_type -> preferences.v1.PreferencesRequest
	2, // 2: preferences.v1.PreferenceService.GetPreferences:output_type -> preferences.v1.PreferencesResponse
	2, // [2:3] is the sub-list for method output_type
	1, // [1:2] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_preferences_v1_preferences_proto_init() }
func file_preferences_v1_preferences_proto_init() {
	if File_preferences_v1_preferences_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_preferences_v1_preferences_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*PreferencesRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_preferences_v1_preferences_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*PreferredRange); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_preferences_v1_preferences_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*PreferencesResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_preferences_v1_preferences_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   3,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_preferences_v1_preferences_proto_goTypes,
		DependencyIndexes: file_preferences_v1_preferences_proto_depIdxs,
		MessageInfos:      file_preferences_v1_preferences_proto_msgTypes,
	}.Build()
	File_preferences_v1_preferences_proto = out.File
	file_preferences_v1_preferences_proto_rawDesc = nil
	file_preferences_v1_preferences_proto_goTypes = nil
	file_preferences_v1_preferences_proto_depIdxs = nil
}
