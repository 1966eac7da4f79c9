package integration

import (
	"math"
	"os"
	"testing"

	"github.com/zoobzio/capitan"
	capitantesting "github.com/zoobzio/capitan/testing"

	"github.com/zoobzio/gensel"
	"github.com/zoobzio/gensel/fieldsel"
	"github.com/zoobzio/gensel/typesel"
)

// TestMain configures the default capitan instance after typesel and
// fieldsel have declared their domains. The configuration only holds if
// package initialization left the default instance untouched.
func TestMain(m *testing.M) {
	capitan.Configure(capitan.WithSyncMode())
	os.Exit(m.Run())
}

func TestConfigureAfterDomainImport(t *testing.T) {
	capture := capitantesting.NewEventCapture()
	listener := capitan.Hook(gensel.SignalDecodeFailed, capture.Handler())
	defer listener.Close()

	var f typesel.Filter
	if err := f.UnmarshalText([]byte("Nope")); err == nil {
		t.Fatal("UnmarshalText() should fail for an unknown name")
	}

	// Sync mode delivers before Emit returns; no waiting.
	if capture.Count() != 1 {
		t.Fatalf("captured %d events synchronously, want 1", capture.Count())
	}
	if got := gensel.KeyDomain.ExtractFromFields(capture.Events()[0].Fields); got != "TypeFilter" {
		t.Errorf("domain = %q, want %q", got, "TypeFilter")
	}
}

func TestShippedDomainsEmitNothingAtInit(t *testing.T) {
	// Touch both domains so their package variables are in use.
	_ = typesel.ProtobufMessage.Filter().String()
	_ = fieldsel.MapField.Filter().String()

	stats := capitan.Default().Stats()
	if n := stats.EmitCounts[gensel.SignalDomainDeclared]; n != 0 {
		t.Errorf("%s emitted %d times, want 0", gensel.SignalDomainDeclared.Name(), n)
	}
}

func TestNewDomainEmitsAtRuntime(t *testing.T) {
	capture := capitantesting.NewEventCapture()
	listener := capitan.Hook(gensel.SignalDomainDeclared, capture.Handler())
	defer listener.Close()

	if _, err := gensel.NewDomain("RuntimeFilter",
		gensel.Variant("Only", 1),
		gensel.Wildcard("All", math.MaxUint32),
	); err != nil {
		t.Fatalf("NewDomain() error: %v", err)
	}

	events := capture.Events()
	if len(events) != 1 {
		t.Fatalf("captured %d events, want 1", len(events))
	}
	if got := gensel.KeyDomain.ExtractFromFields(events[0].Fields); got != "RuntimeFilter" {
		t.Errorf("domain = %q, want %q", got, "RuntimeFilter")
	}
	if got := gensel.KeyVariants.ExtractFromFields(events[0].Fields); got != 1 {
		t.Errorf("variants = %d, want 1", got)
	}
}
