// Package testing provides test utilities for gensel.
package testing

import (
	"encoding/xml"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/zoobzio/gensel"
)

// Shade is a small selector domain for tests. Bit 2 is left undeclared so
// filters can carry a bit no variant owns.
type Shade uint32

const (
	Light Shade = 1 << 0
	Dark  Shade = 1 << 1
	Muted Shade = 1 << 3

	// AnyShade is the wildcard.
	AnyShade Shade = math.MaxUint32

	// Undeclared is a bit ShadeFilter does not declare.
	Undeclared Shade = 1 << 2
)

var shades = gensel.MustDomain("ShadeFilter",
	gensel.Variant("Light", uint32(Light)),
	gensel.Variant("Dark", uint32(Dark)),
	gensel.Variant("Muted", uint32(Muted)),
	gensel.Wildcard("AnyShade", uint32(AnyShade)),
)

// Domain implements gensel.Selector.
func (Shade) Domain() *gensel.Domain { return shades }

func (s Shade) String() string { return shades.NameOf(uint32(s)) }

// ShadeFilter is a set of shades.
type ShadeFilter = gensel.Filter[Shade]

// Rule embeds a filter the way a rule configuration layer would.
type Rule struct {
	XMLName xml.Name    `json:"-" yaml:"-" xml:"rule"`
	Path    string      `json:"path" yaml:"path" xml:"path"`
	Filter  ShadeFilter `json:"filter" yaml:"filter" xml:"filter"`
}

// SampleFilters returns filters covering the rendering cases, keyed by name.
func SampleFilters() map[string]ShadeFilter {
	return map[string]ShadeFilter{
		"empty":      {},
		"single":     gensel.Of(Light),
		"pair":       gensel.Of(Light, Muted),
		"wildcard":   gensel.Of(AnyShade),
		"undeclared": gensel.Of(Dark, Undeclared),
	}
}

// TextFilters returns the sample filters that have a text form.
func TextFilters() map[string]ShadeFilter {
	out := SampleFilters()
	delete(out, "undeclared")
	return out
}

// AssertReportRoundTrip encodes the report of f with c, decodes it back and
// compares it with f.Describe().
func AssertReportRoundTrip(t testing.TB, c gensel.Codec, f ShadeFilter) {
	t.Helper()

	data, err := gensel.Encode(c, f)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	var got gensel.Report
	if err := c.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	opts := []cmp.Option{
		cmpopts.EquateEmpty(),
		cmpopts.IgnoreFields(gensel.Report{}, "XMLName"),
	}
	if diff := cmp.Diff(f.Describe(), got, opts...); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

// AssertRuleRoundTrip encodes r with c, decodes it back and checks that the
// embedded filter survived.
func AssertRuleRoundTrip(t testing.TB, c gensel.Codec, r Rule) {
	t.Helper()

	data, err := c.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var got Rule
	if err := c.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal(%s) error: %v", data, err)
	}

	if got.Path != r.Path {
		t.Errorf("Path = %q, want %q", got.Path, r.Path)
	}
	if got.Filter != r.Filter {
		t.Errorf("Filter = %v, want %v", got.Filter, r.Filter)
	}
}
