package gensel

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"math/bits"
	"slices"
)

// allBits is the wildcard value: every bit of the backing uint32 set.
const allBits uint32 = math.MaxUint32

// Entry declares one member of a Domain.
// Use Variant and Wildcard to construct entries.
type Entry struct {
	name     string
	value    uint32
	wildcard bool
}

// Variant declares an ordinary selector. value must have exactly one bit set.
func Variant(name string, value uint32) Entry {
	return Entry{name: name, value: value}
}

// Wildcard declares the selector matching any non-empty filter.
// value must have every bit set.
func Wildcard(name string, value uint32) Entry {
	return Entry{name: name, value: value, wildcard: true}
}

// Name returns the declared name of the entry.
func (e Entry) Name() string { return e.name }

// Value returns the declared value of the entry.
func (e Entry) Value() uint32 { return e.value }

// Domain is the declared variant table of one selector type.
// A Domain is immutable once declared and safe for concurrent use.
type Domain struct {
	name     string
	wildcard Entry
	variants []Entry // ascending bit order
	byName   map[string]uint32
}

// NewDomain validates entries and returns the domain they describe.
//
// Every ordinary variant must be a single bit, unique within the domain.
// Exactly one wildcard with all bits set is required. Names must be
// non-empty and unique, the wildcard's included.
func NewDomain(name string, entries ...Entry) (*Domain, error) {
	d, err := declare(name, entries)
	if err != nil {
		emitDomainRejected(context.Background(), name, err)
		return nil, err
	}
	emitDomainDeclared(context.Background(), name, len(d.variants))
	return d, nil
}

// MustDomain is like NewDomain but panics on a malformed declaration.
// It is intended for package-level variables and emits no signals, so
// importing a package that declares a domain leaves capitan unconfigured.
func MustDomain(name string, entries ...Entry) *Domain {
	d, err := declare(name, entries)
	if err != nil {
		panic(err)
	}
	return d
}

func declare(name string, entries []Entry) (*Domain, error) {
	if name == "" {
		return nil, newDomainError(ErrEmptyName, name, "")
	}

	d := &Domain{
		name:   name,
		byName: make(map[string]uint32, len(entries)),
	}
	seenBits := make(map[uint32]string, len(entries))
	haveWildcard := false

	for _, e := range entries {
		if e.name == "" {
			return nil, newDomainError(ErrEmptyName, name, fmt.Sprintf("value %d", e.value))
		}
		if _, dup := d.byName[e.name]; dup {
			return nil, newDomainError(ErrDuplicateName, name, e.name)
		}

		if e.wildcard {
			if haveWildcard || e.value != allBits {
				return nil, newDomainError(ErrInvalidWildcard, name, e.name)
			}
			haveWildcard = true
			d.wildcard = e
			d.byName[e.name] = e.value
			continue
		}

		if bits.OnesCount32(e.value) != 1 {
			return nil, newDomainError(ErrNotSingleBit, name, e.name)
		}
		if _, dup := seenBits[e.value]; dup {
			return nil, newDomainError(ErrDuplicateBit, name, e.name)
		}
		seenBits[e.value] = e.name
		d.byName[e.name] = e.value
		d.variants = append(d.variants, e)
	}

	if !haveWildcard {
		return nil, newDomainError(ErrInvalidWildcard, name, "")
	}

	slices.SortFunc(d.variants, func(a, b Entry) int {
		return cmp.Compare(a.value, b.value)
	})
	return d, nil
}

// Name returns the display name of the domain, e.g. "TypeFilter".
func (d *Domain) Name() string { return d.name }

// Wildcard returns the wildcard entry.
func (d *Domain) Wildcard() Entry { return d.wildcard }

// Variants returns the ordinary entries in ascending bit order.
func (d *Domain) Variants() []Entry {
	return slices.Clone(d.variants)
}

// NameOf returns the declared name for value. Values that are neither an
// ordinary variant nor the wildcard render as "<Domain>(value)".
func (d *Domain) NameOf(value uint32) string {
	if value == d.wildcard.value {
		return d.wildcard.name
	}
	if e, err := d.lookup(value); err == nil {
		return e.name
	}
	return fmt.Sprintf("%s(%d)", d.name, value)
}

// lookup resolves value to the ordinary variant declared with exactly that
// bit. Zero, composite masks and the wildcard all fail with *UnknownBitError
// carrying value unchanged.
func (d *Domain) lookup(value uint32) (Entry, error) {
	for _, e := range d.variants {
		if e.value == value {
			return e, nil
		}
	}
	return Entry{}, &UnknownBitError{Domain: d.name, Value: value}
}

// parse resolves a declared name, the wildcard's included, to its value.
func (d *Domain) parse(name string) (uint32, error) {
	if v, ok := d.byName[name]; ok {
		return v, nil
	}
	return 0, &SelectorError{Domain: d.name, Name: name}
}
