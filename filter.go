package gensel

// Filter is a set of selectors from one domain. The filter matches an element
// if ANY of its selectors match.
//
// The zero value is the empty filter and matches nothing. Filters are values:
// Union and With return a new Filter and never modify the receiver.
type Filter[S Selector] struct {
	mask uint32
}

// Of returns the filter containing exactly the given selectors.
// Of() with no arguments is the empty filter.
func Of[S Selector](selectors ...S) Filter[S] {
	var mask uint32
	for _, s := range selectors {
		mask |= uint32(s)
	}
	return Filter[S]{mask: mask}
}

// Union returns the filter containing every selector of every operand.
func Union[S Selector](filters ...Filter[S]) Filter[S] {
	var mask uint32
	for _, f := range filters {
		mask |= f.mask
	}
	return Filter[S]{mask: mask}
}

// IsSet reports whether the filter shares a bit with s.
//
// For the wildcard this is true for every non-empty filter, whichever
// selectors it holds. It is not a test that all declared selectors are set.
func (f Filter[S]) IsSet(s S) bool {
	return f.mask&uint32(s) != 0
}

// With returns a filter holding the receiver's selectors and the given ones.
func (f Filter[S]) With(selectors ...S) Filter[S] {
	return Union(f, Of(selectors...))
}

// Union returns a filter holding the receiver's selectors and those of others.
func (f Filter[S]) Union(others ...Filter[S]) Filter[S] {
	return Union(append([]Filter[S]{f}, others...)...)
}

// IsEmpty reports whether the filter holds no selectors.
func (f Filter[S]) IsEmpty() bool {
	return f.mask == 0
}

// Mask returns the raw bitmask.
func (f Filter[S]) Mask() uint32 {
	return f.mask
}

// Selectors returns the declared ordinary selectors present in the filter,
// in ascending bit order. Bits no variant owns are omitted; see Describe.
func (f Filter[S]) Selectors() []S {
	var out []S
	for _, e := range domainOf[S]().variants {
		if f.mask&e.value != 0 {
			out = append(out, S(e.value))
		}
	}
	return out
}

// domainOf returns the domain declared for selector type S.
func domainOf[S Selector]() *Domain {
	var zero S
	return zero.Domain()
}
