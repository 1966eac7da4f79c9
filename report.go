package gensel

import "encoding/xml"

// Report is the structured form of a rendered filter, suitable for
// structured logs and diagnostic dumps.
type Report struct {
	XMLName xml.Name `json:"-" yaml:"-" msgpack:"-" bson:"-" xml:"filter"`

	// Domain is the display name of the selector domain.
	Domain string `json:"domain" yaml:"domain" msgpack:"domain" bson:"domain" xml:"domain,attr"`

	// Mask is the raw bitmask.
	Mask uint32 `json:"mask" yaml:"mask" msgpack:"mask" bson:"mask" xml:"mask,attr"`

	// Selectors names the declared variants present, in ascending bit order.
	Selectors []string `json:"selectors,omitempty" yaml:"selectors,omitempty" msgpack:"selectors,omitempty" bson:"selectors,omitempty" xml:"selector"`

	// Unrecognized holds the set bits no declared variant owns.
	Unrecognized []uint32 `json:"unrecognized,omitempty" yaml:"unrecognized,omitempty" msgpack:"unrecognized,omitempty" bson:"unrecognized,omitempty" xml:"unrecognized"`
}

// Describe returns the filter's contents as a Report.
func (f Filter[S]) Describe() Report {
	return describe(domainOf[S](), f.mask)
}

func describe(d *Domain, mask uint32) Report {
	r := Report{Domain: d.name, Mask: mask}
	for idx := 0; idx < maskWidth; idx++ {
		bit := uint32(1) << idx
		if mask&bit == 0 {
			continue
		}
		e, err := d.lookup(bit)
		if err != nil {
			r.Unrecognized = append(r.Unrecognized, bit)
			continue
		}
		r.Selectors = append(r.Selectors, e.name)
	}
	return r
}

// Encode serializes the filter's Report with the given codec.
func Encode[S Selector](c Codec, f Filter[S]) ([]byte, error) {
	data, err := c.Marshal(f.Describe())
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}
