// Package gensel provides bit-per-variant selectors and filters for deciding
// whether a code generation rule applies to the element being emitted.
//
// A selector domain is a closed set of constants over uint32. Every ordinary
// constant owns exactly one bit and one wildcard constant owns all of them.
// A Filter is a set of selectors from one domain, stored as a single mask.
//
// # Domains
//
// Two domains ship with the package:
//
//   - typesel: schema constructs (message, enum, oneof) and the output types
//     generated for them (struct, enum, C-like enum, enum with data)
//   - fieldsel: protobuf wire kinds plus the synthetic field categories
//     NoDataEnumVariant, OneofField and MapField
//
// A domain is declared once at package initialization:
//
//	type Selector uint32
//
//	const (
//	    Red Selector = 1 << iota
//	    Green
//	    Everything Selector = math.MaxUint32
//	)
//
//	var domain = gensel.MustDomain("ColorFilter",
//	    gensel.Variant("Red", uint32(Red)),
//	    gensel.Variant("Green", uint32(Green)),
//	    gensel.Wildcard("Everything", uint32(Everything)),
//	)
//
//	func (Selector) Domain() *gensel.Domain { return domain }
//
// Declaration fails when a value is not a single bit, when two variants share
// a bit or a name, or when the wildcard is missing or not all ones.
//
// # Filters
//
// Filters are values. Every combining operation returns a new Filter:
//
//	f := gensel.Of(typesel.ProtobufMessage, typesel.ProtobufEnum)
//	g := f.With(typesel.OutputStruct)
//	h := gensel.Union(f, g)
//
//	if h.IsSet(typesel.ProtobufEnum) { ... }
//
// The zero Filter is empty and matches nothing.
//
// # Wildcard
//
// IsSet with the wildcard reports whether the filter is non-empty. It does not
// check that every declared selector is present:
//
//	gensel.Of(typesel.ProtobufEnum).IsSet(typesel.Everything) // true
//	gensel.Filter[typesel.Selector]{}.IsSet(typesel.Everything) // false
//
// # Diagnostics
//
// Filters render for troubleshooting:
//
//	fmt.Println(f) // TypeFilter( ProtobufMessage | ProtobufEnum )
//
// A set bit that no declared variant owns renders as
// "unrecognized bit value N". Describe returns the same information as a
// Report, and Encode serializes a Report with any Codec:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// # Text Encoding
//
// Filters implement encoding.TextMarshaler and encoding.TextUnmarshaler so
// they can be embedded in configuration structures:
//
//	ProtobufMessage|ProtobufEnum
//
// The all-ones mask encodes as the wildcard name.
package gensel

// Selector is the constraint satisfied by every selector domain.
// The underlying value of an ordinary selector has exactly one bit set.
type Selector interface {
	~uint32

	// Domain returns the declared variant table for the selector type.
	// It must not depend on the receiver's value.
	Domain() *Domain
}

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
