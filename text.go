package gensel

import (
	"context"
	"strings"
)

// textSeparator joins selector names in the text form of a filter.
const textSeparator = "|"

// MarshalText implements encoding.TextMarshaler.
//
// The text form lists declared names in ascending bit order joined by "|".
// The all-ones mask encodes as the wildcard name and the empty filter as "".
// Any other mask with a bit no variant owns fails with *UnknownBitError.
func (f Filter[S]) MarshalText() ([]byte, error) {
	d := domainOf[S]()
	if f.mask == allBits {
		return []byte(d.wildcard.name), nil
	}

	var names []string
	for idx := 0; idx < maskWidth; idx++ {
		bit := uint32(1) << idx
		if f.mask&bit == 0 {
			continue
		}
		e, err := d.lookup(bit)
		if err != nil {
			return nil, err
		}
		names = append(names, e.name)
	}
	return []byte(strings.Join(names, textSeparator)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It accepts declared names, the wildcard's included, separated by "|" with
// optional surrounding whitespace. Empty text decodes to the empty filter.
func (f *Filter[S]) UnmarshalText(text []byte) error {
	d := domainOf[S]()

	var mask uint32
	for _, part := range strings.Split(string(text), textSeparator) {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		v, err := d.parse(name)
		if err != nil {
			emitDecodeFailed(context.Background(), d.name, string(text), err)
			return err
		}
		mask |= v
	}

	*f = Filter[S]{mask: mask}
	return nil
}
