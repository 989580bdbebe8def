package trace

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Outcome is how a load ended from the picker's point of view.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeEmpty   Outcome = "empty"
	OutcomeFailure Outcome = "failure"
	OutcomeStale   Outcome = "stale" // finished after its selection was replaced
)

// SpanLoad is the name of the span covering one load.
const SpanLoad = "photopick.load"

// Attribute keys.
const (
	AttrSelectionID   = "photopick.selection.id"
	AttrSelectionName = "photopick.selection.name"
	AttrLoadID        = "photopick.load.id"
	AttrOutcome       = "photopick.outcome"
)

// StartLoad opens a load span and returns it with a fresh load id.
func (t *Tracer) StartLoad(ctx context.Context, selectionID, name string) (context.Context, oteltrace.Span, string) {
	loadID := uuid.NewString()
	if t == nil {
		t = Noop()
	}
	ctx, span := t.tracer.Start(ctx, SpanLoad,
		oteltrace.WithAttributes(
			attribute.String(AttrSelectionID, selectionID),
			attribute.String(AttrSelectionName, name),
			attribute.String(AttrLoadID, loadID),
		),
	)
	return ctx, span, loadID
}

// EndLoad records the outcome on span and ends it. A nil span is ignored.
func EndLoad(span oteltrace.Span, outcome Outcome, err error) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.String(AttrOutcome, string(outcome)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
