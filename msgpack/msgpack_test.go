package msgpack

import (
	"testing"

	gentest "github.com/zoobzio/gensel/testing"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/msgpack" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/msgpack")
	}
}

func TestReportRoundTrip(t *testing.T) {
	c := New()
	for name, f := range gentest.SampleFilters() {
		t.Run(name, func(t *testing.T) {
			gentest.AssertReportRoundTrip(t, c, f)
		})
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v struct{}
	err := c.Unmarshal([]byte("not msgpack"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
