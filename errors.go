package gensel

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnknownBit indicates a mask value is not the bit of a declared variant.
	ErrUnknownBit = errors.New("unknown bit")

	// ErrUnknownSelector indicates a selector name is not declared in the domain.
	ErrUnknownSelector = errors.New("unknown selector")

	// ErrEmptyName indicates a domain or variant was declared without a name.
	ErrEmptyName = errors.New("empty name")

	// ErrNotSingleBit indicates a variant value does not have exactly one bit set.
	ErrNotSingleBit = errors.New("variant is not a single bit")

	// ErrDuplicateBit indicates two variants were declared with the same bit.
	ErrDuplicateBit = errors.New("duplicate bit")

	// ErrDuplicateName indicates two variants were declared with the same name.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrInvalidWildcard indicates a domain has no wildcard or more than one.
	ErrInvalidWildcard = errors.New("invalid wildcard")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// UnknownBitError reports a value that matches no declared variant.
// Value is the raw value that failed the lookup, unchanged.
type UnknownBitError struct {
	Domain string
	Value  uint32
}

func (e *UnknownBitError) Error() string {
	return fmt.Sprintf("%s: %s value %d", e.Domain, ErrUnknownBit.Error(), e.Value)
}

func (e *UnknownBitError) Unwrap() error {
	return ErrUnknownBit
}

// DomainError represents a domain declaration error.
// It wraps a sentinel error with the domain and variant that triggered it.
type DomainError struct {
	Err     error  // Underlying sentinel error (ErrNotSingleBit, etc.)
	Domain  string // Domain being declared
	Variant string // Variant that triggered the error, if any
}

func (e *DomainError) Error() string {
	if e.Variant != "" {
		return fmt.Sprintf("domain %q: %s (variant %s)", e.Domain, e.Err.Error(), e.Variant)
	}
	return fmt.Sprintf("domain %q: %s", e.Domain, e.Err.Error())
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// SelectorError reports a selector name that a domain does not declare.
type SelectorError struct {
	Domain string
	Name   string
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Domain, ErrUnknownSelector.Error(), e.Name)
}

func (e *SelectorError) Unwrap() error {
	return ErrUnknownSelector
}

// CodecError represents a marshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newDomainError creates a DomainError for declaration failures.
func newDomainError(sentinel error, domain, variant string) error {
	return &DomainError{
		Err:     sentinel,
		Domain:  domain,
		Variant: variant,
	}
}

// newCodecError creates a CodecError for marshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
