package gensel

import "math"

// color is the selector domain used by the package tests.
// Bits 2 through 4 are left undeclared.
type color uint32

const (
	red       color = 1 << 0
	green     color = 1 << 1
	blue      color = 1 << 5
	allColors color = math.MaxUint32
)

var colors = MustDomain("ColorFilter",
	Variant("Blue", uint32(blue)),
	Variant("Red", uint32(red)),
	Variant("Green", uint32(green)),
	Wildcard("AllColors", uint32(allColors)),
)

func (color) Domain() *Domain { return colors }

func (c color) String() string { return colors.NameOf(uint32(c)) }

// ordinaryColors lists every declared ordinary variant.
var ordinaryColors = []color{red, green, blue}
