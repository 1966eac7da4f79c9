package gensel

import (
	"fmt"
	"strings"
)

// maskWidth is the bit width of the backing integer.
const maskWidth = 32

// String renders the filter for troubleshooting, e.g.
// "TypeFilter( ProtobufMessage | ProtobufEnum )". Selectors appear in
// ascending bit order; the empty filter renders as "TypeFilter(  )".
func (f Filter[S]) String() string {
	return render(domainOf[S](), f.mask)
}

// render scans every bit position of mask and names each set bit.
// Bits no declared variant owns render inline and do not stop the scan.
func render(d *Domain, mask uint32) string {
	var b strings.Builder
	b.WriteString(d.name)
	b.WriteString("( ")

	written := false
	for idx := 0; idx < maskWidth; idx++ {
		bit := uint32(1) << idx
		if mask&bit == 0 {
			continue
		}
		if written {
			b.WriteString(" | ")
		}
		written = true

		e, err := d.lookup(bit)
		if err != nil {
			fmt.Fprintf(&b, "unrecognized bit value %d", bit)
			continue
		}
		b.WriteString(e.name)
	}

	b.WriteString(" )")
	return b.String()
}
