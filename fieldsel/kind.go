package fieldsel

import (
	"fmt"

	"github.com/zoobzio/gensel"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// FromKind returns the selector for a declared wire kind.
//
// The switch lists every member of FieldDescriptorProto_Type; the exhaustive
// linter fails the build when the enum gains a member this switch lacks.
// Only a value outside the enum reaches the panic.
func FromKind(t descriptorpb.FieldDescriptorProto_Type) Selector {
	//exhaustive:enforce
	switch t {
	case descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:
		return Double
	case descriptorpb.FieldDescriptorProto_TYPE_FLOAT:
		return Float
	case descriptorpb.FieldDescriptorProto_TYPE_INT64:
		return Int64
	case descriptorpb.FieldDescriptorProto_TYPE_UINT64:
		return Uint64
	case descriptorpb.FieldDescriptorProto_TYPE_INT32:
		return Int32
	case descriptorpb.FieldDescriptorProto_TYPE_FIXED64:
		return Fixed64
	case descriptorpb.FieldDescriptorProto_TYPE_FIXED32:
		return Fixed32
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return Bool
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return String
	case descriptorpb.FieldDescriptorProto_TYPE_GROUP:
		return Group
	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE:
		return Message
	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return Bytes
	case descriptorpb.FieldDescriptorProto_TYPE_UINT32:
		return Uint32
	case descriptorpb.FieldDescriptorProto_TYPE_ENUM:
		return Enum
	case descriptorpb.FieldDescriptorProto_TYPE_SFIXED32:
		return Sfixed32
	case descriptorpb.FieldDescriptorProto_TYPE_SFIXED64:
		return Sfixed64
	case descriptorpb.FieldDescriptorProto_TYPE_SINT32:
		return Sint32
	case descriptorpb.FieldDescriptorProto_TYPE_SINT64:
		return Sint64
	}
	panic(fmt.Sprintf("fieldsel: %d is not a FieldDescriptorProto_Type", int32(t)))
}

// FromProtoKind returns the selector for a protoreflect kind.
// protoreflect.Kind shares its numbering with FieldDescriptorProto_Type.
func FromProtoKind(k protoreflect.Kind) Selector {
	return FromKind(descriptorpb.FieldDescriptorProto_Type(k))
}

// ForField returns the selectors matching fd: its wire kind, plus MapField
// for map fields and OneofField for members of a oneof written in the
// schema. Proto3 optional fields sit in a synthetic oneof and do not get
// OneofField.
func ForField(fd protoreflect.FieldDescriptor) Filter {
	f := gensel.Of(FromProtoKind(fd.Kind()))
	if fd.IsMap() {
		f = f.With(MapField)
	}
	if od := fd.ContainingOneof(); od != nil && !od.IsSynthetic() {
		f = f.With(OneofField)
	}
	return f
}

// ForEnumValue returns the selectors matching an enum variant. Protobuf enum
// values carry no data, so every variant is a NoDataEnumVariant.
func ForEnumValue(protoreflect.EnumValueDescriptor) Filter {
	return NoDataEnumVariant.Filter()
}
