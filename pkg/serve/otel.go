package serve

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for the preview server.
const defaultTracerName = "reactive"

// tracer wraps span creation so the hot path stays a no-op when tracing
// is disabled.
type tracer struct {
	t trace.Tracer
}

func newTracer(enabled bool, name string) *tracer {
	if !enabled {
		return nil
	}
	if name == "" {
		name = defaultTracerName
	}
	return &tracer{t: otel.Tracer(name)}
}

// startEvent opens a span for one client event. The returned finish
// func records the outcome and the number of mutations produced.
func (tr *tracer) startEvent(ctx context.Context, page, eventType string) (context.Context, func(opCount int, err error)) {
	if tr == nil {
		return ctx, func(int, error) {}
	}

	spanCtx, span := tr.t.Start(ctx, "reactive."+eventType,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("reactive.page", page),
			attribute.String("reactive.event_type", eventType),
		),
	)

	return spanCtx, func(opCount int, err error) {
		span.SetAttributes(attribute.Int("reactive.op_count", opCount))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}

// startPage opens a span for a full-page render.
func (tr *tracer) startPage(ctx context.Context, page string) (context.Context, func()) {
	if tr == nil {
		return ctx, func() {}
	}
	spanCtx, span := tr.t.Start(ctx, "reactive.render",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("reactive.page", page)),
	)
	return spanCtx, func() { span.End() }
}
