package gensel_test

import (
	"fmt"

	"github.com/zoobzio/gensel"
	"github.com/zoobzio/gensel/fieldsel"
	"github.com/zoobzio/gensel/typesel"
	"google.golang.org/protobuf/types/descriptorpb"
)

func ExampleOf() {
	f := gensel.Of(typesel.ProtobufEnum, typesel.ProtobufMessage)
	fmt.Println(f)
	fmt.Println(f.IsSet(typesel.ProtobufOneof))
	// Output:
	// TypeFilter( ProtobufMessage | ProtobufEnum )
	// false
}

func ExampleFilter_IsSet_wildcard() {
	var empty typesel.Filter
	fmt.Println(empty.IsSet(typesel.Everything))
	fmt.Println(typesel.ProtobufOneof.Filter().IsSet(typesel.Everything))
	// Output:
	// false
	// true
}

func ExampleUnion() {
	scalars := fieldsel.Int32.Or(fieldsel.Int64)
	strings := fieldsel.String.Or(fieldsel.Bytes)

	kind := fieldsel.FromKind(descriptorpb.FieldDescriptorProto_TYPE_BYTES)
	fmt.Println(gensel.Union(scalars, strings).IsSet(kind))
	// Output:
	// true
}

func ExampleFilter_String() {
	fmt.Println(typesel.Filter{})
	fmt.Println(fieldsel.MapField.Or(fieldsel.Message))
	// Output:
	// TypeFilter(  )
	// FieldFilter( Message | MapField )
}

func ExampleFilter_MarshalText() {
	text, _ := typesel.OutputEnum.Or(typesel.ProtobufOneof).MarshalText()
	fmt.Println(string(text))

	var f typesel.Filter
	_ = f.UnmarshalText([]byte("ProtobufMessage | OutputStruct"))
	fmt.Println(f)
	// Output:
	// ProtobufOneof|OutputEnum
	// TypeFilter( ProtobufMessage | OutputStruct )
}
