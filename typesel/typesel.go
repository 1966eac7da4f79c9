// Package typesel selects generated output types by the schema construct
// they represent or by the kind of type emitted for them.
package typesel

import (
	"math"

	"github.com/zoobzio/gensel"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Selector selects an output object (struct or enum) during code generation
// based on either the output type or the protobuf construct (message, enum,
// oneof) it represents.
type Selector uint32

const (
	ProtobufMessage    Selector = 1 << 0
	ProtobufEnum       Selector = 1 << 1
	ProtobufOneof      Selector = 1 << 2
	OutputStruct       Selector = 1 << 3
	OutputEnum         Selector = 1 << 4
	OutputEnumCLike    Selector = 1 << 5 // enum without per-variant data
	OutputEnumWithData Selector = 1 << 6

	// Everything matches any non-empty filter.
	Everything Selector = math.MaxUint32
)

// Filter is a set of type selectors.
type Filter = gensel.Filter[Selector]

var domain = gensel.MustDomain("TypeFilter",
	gensel.Variant("ProtobufMessage", uint32(ProtobufMessage)),
	gensel.Variant("ProtobufEnum", uint32(ProtobufEnum)),
	gensel.Variant("ProtobufOneof", uint32(ProtobufOneof)),
	gensel.Variant("OutputStruct", uint32(OutputStruct)),
	gensel.Variant("OutputEnum", uint32(OutputEnum)),
	gensel.Variant("OutputEnumCLike", uint32(OutputEnumCLike)),
	gensel.Variant("OutputEnumWithData", uint32(OutputEnumWithData)),
	gensel.Wildcard("Everything", uint32(Everything)),
)

// Domain implements gensel.Selector.
func (Selector) Domain() *gensel.Domain { return domain }

// String returns the declared name of s, e.g. "ProtobufMessage".
func (s Selector) String() string { return domain.NameOf(uint32(s)) }

// Filter returns the filter holding only s.
func (s Selector) Filter() Filter { return gensel.Of(s) }

// Or returns the filter holding s and others.
func (s Selector) Or(others ...Selector) Filter {
	return gensel.Of(s).With(others...)
}

// ForDescriptor returns the selectors that match the output type generated
// for d. Messages become structs, enums become C-like enums and oneofs
// become enums with data. Map entry messages and synthetic oneofs generate
// no type of their own and yield the empty filter, as does any other
// descriptor.
func ForDescriptor(d protoreflect.Descriptor) Filter {
	switch d := d.(type) {
	case protoreflect.MessageDescriptor:
		if d.IsMapEntry() {
			return Filter{}
		}
		return ProtobufMessage.Or(OutputStruct)
	case protoreflect.EnumDescriptor:
		return ProtobufEnum.Or(OutputEnum, OutputEnumCLike)
	case protoreflect.OneofDescriptor:
		if d.IsSynthetic() {
			return Filter{}
		}
		return ProtobufOneof.Or(OutputEnum, OutputEnumWithData)
	default:
		return Filter{}
	}
}
