// Package fieldsel selects fields during code generation by wire kind, or by
// the synthetic categories a wire kind cannot express.
package fieldsel

import (
	"math"

	"github.com/zoobzio/gensel"
)

// Selector selects a field by its protobuf wire kind or by a synthetic
// field category.
//
// Wire kind selectors sit at the bit matching their descriptor.proto type
// number, so bit 0 is never declared.
type Selector uint32

// Protobuf wire kinds.
const (
	Double   Selector = 1 << 1
	Float    Selector = 1 << 2
	Int64    Selector = 1 << 3
	Uint64   Selector = 1 << 4
	Int32    Selector = 1 << 5
	Fixed64  Selector = 1 << 6
	Fixed32  Selector = 1 << 7
	Bool     Selector = 1 << 8
	String   Selector = 1 << 9
	Group    Selector = 1 << 10
	Message  Selector = 1 << 11
	Bytes    Selector = 1 << 12
	Uint32   Selector = 1 << 13
	Enum     Selector = 1 << 14
	Sfixed32 Selector = 1 << 15
	Sfixed64 Selector = 1 << 16
	Sint32   Selector = 1 << 17
	Sint64   Selector = 1 << 18
)

// Synthetic field categories. No wire kind maps to these; callers set them
// from structural facts about the field.
const (
	// NoDataEnumVariant is an enum variant with no data.
	NoDataEnumVariant Selector = 1 << 19

	// OneofField is a member of a oneof.
	OneofField Selector = 1 << 20

	// MapField is a map field.
	MapField Selector = 1 << 21
)

// Everything matches any non-empty filter.
const Everything Selector = math.MaxUint32

// Filter is a set of field selectors.
type Filter = gensel.Filter[Selector]

var domain = gensel.MustDomain("FieldFilter",
	gensel.Variant("Double", uint32(Double)),
	gensel.Variant("Float", uint32(Float)),
	gensel.Variant("Int64", uint32(Int64)),
	gensel.Variant("Uint64", uint32(Uint64)),
	gensel.Variant("Int32", uint32(Int32)),
	gensel.Variant("Fixed64", uint32(Fixed64)),
	gensel.Variant("Fixed32", uint32(Fixed32)),
	gensel.Variant("Bool", uint32(Bool)),
	gensel.Variant("String", uint32(String)),
	gensel.Variant("Group", uint32(Group)),
	gensel.Variant("Message", uint32(Message)),
	gensel.Variant("Bytes", uint32(Bytes)),
	gensel.Variant("Uint32", uint32(Uint32)),
	gensel.Variant("Enum", uint32(Enum)),
	gensel.Variant("Sfixed32", uint32(Sfixed32)),
	gensel.Variant("Sfixed64", uint32(Sfixed64)),
	gensel.Variant("Sint32", uint32(Sint32)),
	gensel.Variant("Sint64", uint32(Sint64)),
	gensel.Variant("NoDataEnumVariant", uint32(NoDataEnumVariant)),
	gensel.Variant("OneofField", uint32(OneofField)),
	gensel.Variant("MapField", uint32(MapField)),
	gensel.Wildcard("Everything", uint32(Everything)),
)

// Domain implements gensel.Selector.
func (Selector) Domain() *gensel.Domain { return domain }

// String returns the declared name of s, e.g. "MapField".
func (s Selector) String() string { return domain.NameOf(uint32(s)) }

// Filter returns the filter holding only s.
func (s Selector) Filter() Filter { return gensel.Of(s) }

// Or returns the filter holding s and others.
func (s Selector) Or(others ...Selector) Filter {
	return gensel.Of(s).With(others...)
}
