package gensel

import (
	"errors"
	"testing"
)

func TestDomainError_Is(t *testing.T) {
	err := newDomainError(ErrDuplicateBit, "TypeFilter", "ProtobufEnum")

	if !errors.Is(err, ErrDuplicateBit) {
		t.Error("DomainError should unwrap to ErrDuplicateBit")
	}

	if errors.Is(err, ErrNotSingleBit) {
		t.Error("DomainError should not match ErrNotSingleBit")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "domain error with variant",
			err:  newDomainError(ErrNotSingleBit, "TypeFilter", "Both"),
			want: `domain "TypeFilter": variant is not a single bit (variant Both)`,
		},
		{
			name: "domain error without variant",
			err:  &DomainError{Err: ErrInvalidWildcard, Domain: "FieldFilter"},
			want: `domain "FieldFilter": invalid wildcard`,
		},
		{
			name: "unknown bit",
			err:  &UnknownBitError{Domain: "FieldFilter", Value: 1},
			want: "FieldFilter: unknown bit value 1",
		},
		{
			name: "unknown selector",
			err:  &SelectorError{Domain: "TypeFilter", Name: "Record"},
			want: `TypeFilter: unknown selector "Record"`,
		},
		{
			name: "codec error with cause",
			err:  newCodecError(ErrMarshal, errors.New("bad input")),
			want: "marshal failed: bad input",
		},
		{
			name: "codec error without cause",
			err:  &CodecError{Err: ErrMarshal},
			want: "marshal failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnknownBitError_Is(t *testing.T) {
	var err error = &UnknownBitError{Domain: "TypeFilter", Value: 0}
	if !errors.Is(err, ErrUnknownBit) {
		t.Error("UnknownBitError should unwrap to ErrUnknownBit")
	}
}

func TestSelectorError_Is(t *testing.T) {
	var err error = &SelectorError{Domain: "TypeFilter", Name: "x"}
	if !errors.Is(err, ErrUnknownSelector) {
		t.Error("SelectorError should unwrap to ErrUnknownSelector")
	}
}

func TestCodecError_Is(t *testing.T) {
	err := newCodecError(ErrMarshal, errors.New("boom"))
	if !errors.Is(err, ErrMarshal) {
		t.Error("CodecError should unwrap to ErrMarshal")
	}
}
