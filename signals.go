package gensel

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for selector domain events.
var (
	SignalDomainDeclared = capitan.NewSignal("gensel.domain.declared", "Selector domain declared")
	SignalDomainRejected = capitan.NewSignal("gensel.domain.rejected", "Selector domain failed validation")
	SignalDecodeFailed   = capitan.NewSignal("gensel.filter.decode_failed", "Filter text could not be decoded")
)

// Keys for typed event data.
var (
	KeyDomain   = capitan.NewStringKey("domain")
	KeyVariants = capitan.NewIntKey("variants")
	KeyText     = capitan.NewStringKey("text")
	KeyError    = capitan.NewErrorKey("error")
)

// emitDomainDeclared emits an event when a domain passes validation.
func emitDomainDeclared(ctx context.Context, domain string, variants int) {
	capitan.Emit(ctx, SignalDomainDeclared,
		KeyDomain.Field(domain),
		KeyVariants.Field(variants),
	)
}

// emitDomainRejected emits an event when a domain fails validation.
func emitDomainRejected(ctx context.Context, domain string, err error) {
	capitan.Error(ctx, SignalDomainRejected,
		KeyDomain.Field(domain),
		KeyError.Field(err),
	)
}

// emitDecodeFailed emits an event when filter text names an unknown selector.
func emitDecodeFailed(ctx context.Context, domain, text string, err error) {
	capitan.Error(ctx, SignalDecodeFailed,
		KeyDomain.Field(domain),
		KeyText.Field(text),
		KeyError.Field(err),
	)
}
